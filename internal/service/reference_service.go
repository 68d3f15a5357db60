package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ReferenceService serves satker, kode akun and required-flag data.
type ReferenceService struct {
	satkerRepo   SatkerRepository
	kodeAkunRepo KodeAkunRepository
	flagRepo     FlagRepository
	flagCounter  *RequiredFlagCounter
	logger       *logrus.Logger
}

func NewReferenceService(
	satkerRepo SatkerRepository,
	kodeAkunRepo KodeAkunRepository,
	flagRepo FlagRepository,
	flagCounter *RequiredFlagCounter,
	logger *logrus.Logger,
) *ReferenceService {
	return &ReferenceService{
		satkerRepo:   satkerRepo,
		kodeAkunRepo: kodeAkunRepo,
		flagRepo:     flagRepo,
		flagCounter:  flagCounter,
		logger:       logger,
	}
}

func (s *ReferenceService) ListSatker(ctx context.Context) ([]models.Satker, error) {
	return s.satkerRepo.FindAll(ctx)
}

func (s *ReferenceService) ListKodeAkun(ctx context.Context) ([]models.KodeAkun, error) {
	return s.kodeAkunRepo.FindAll(ctx)
}

// FlagsOfKodeAkun returns the documents required for a kode akun.
func (s *ReferenceService) FlagsOfKodeAkun(ctx context.Context, kodeAkunID int) ([]models.Flag, error) {
	if _, err := s.kodeAkunRepo.FindByID(ctx, kodeAkunID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrKodeAkunNotFound
		}
		return nil, err
	}
	return s.flagRepo.FindByKodeAkun(ctx, kodeAkunID)
}

func (s *ReferenceService) CreateFlag(ctx context.Context, req models.FlagRequest) (*models.Flag, error) {
	nama := strings.TrimSpace(req.Nama)
	tipe := strings.TrimSpace(req.Tipe)
	if nama == "" || tipe == "" || req.KodeAkunID <= 0 {
		return nil, fmt.Errorf("%w: nama, tipe and kode_akun_id are required", ErrInvalidFlag)
	}

	if _, err := s.kodeAkunRepo.FindByID(ctx, req.KodeAkunID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrKodeAkunNotFound
		}
		return nil, err
	}

	flag := &models.Flag{Nama: nama, Tipe: tipe, KodeAkunID: req.KodeAkunID}
	if err := s.flagRepo.Create(ctx, flag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateFlag
		}
		return nil, fmt.Errorf("create flag: %w", err)
	}

	s.flagCounter.Invalidate(ctx, flag.KodeAkunID)
	return flag, nil
}

// UpdateFlag renames a flag or changes its declared type. The kode akun it
// belongs to never changes.
func (s *ReferenceService) UpdateFlag(ctx context.Context, id int, req models.FlagRequest) (*models.Flag, error) {
	flag, err := s.flagRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}

	if nama := strings.TrimSpace(req.Nama); nama != "" {
		flag.Nama = nama
	}
	if tipe := strings.TrimSpace(req.Tipe); tipe != "" {
		flag.Tipe = tipe
	}

	if err := s.flagRepo.Update(ctx, flag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateFlag
		}
		return nil, fmt.Errorf("update flag: %w", err)
	}
	return flag, nil
}

func (s *ReferenceService) DeleteFlag(ctx context.Context, id int) error {
	flag, err := s.flagRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFlagNotFound
		}
		return err
	}

	if err := s.flagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFlagNotFound
		}
		return err
	}

	s.flagCounter.Invalidate(ctx, flag.KodeAkunID)
	return nil
}

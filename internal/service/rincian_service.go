package service

import (
	"context"
	"errors"
	"fmt"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"
)

type RincianService struct {
	rincianRepo RincianRepository
	flagCounter *RequiredFlagCounter
	scorer      *CompletenessScorer
}

func NewRincianService(rincianRepo RincianRepository, flagCounter *RequiredFlagCounter, scorer *CompletenessScorer) *RincianService {
	return &RincianService{
		rincianRepo: rincianRepo,
		flagCounter: flagCounter,
		scorer:      scorer,
	}
}

func (s *RincianService) List(ctx context.Context, user models.CurrentUser, filter models.RincianFilter) ([]models.RincianDetail, error) {
	satkerID, err := scopeSatker(user, filter.SatkerID)
	if err != nil {
		return nil, err
	}
	filter.SatkerID = satkerID

	details, err := s.rincianRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rincian: %w", err)
	}
	if err := s.score(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *RincianService) Get(ctx context.Context, user models.CurrentUser, id int) (*models.RincianDetail, error) {
	detail, err := s.rincianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRincianNotFound
		}
		return nil, err
	}
	if !canRead(user, detail.SatkerID) {
		return nil, ErrForbidden
	}

	details := []models.RincianDetail{*detail}
	if err := s.score(ctx, details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *RincianService) score(ctx context.Context, details []models.RincianDetail) error {
	counts, err := s.flagCounter.Counts(ctx, kodeAkunIDsOf(details))
	if err != nil {
		return err
	}
	for i := range details {
		details[i].KodeAkun = &models.KodeAkun{ID: details[i].KodeAkunID, Kode: details[i].KodeAkunKode, Nama: details[i].KodeAkunNama}
		details[i].PersentaseKelengkapan = s.scorer.ScoreRincian(details[i].Rincian, counts)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"spm-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// DefaultSatkers are the provincial and regency offices seeded on a fresh install.
var DefaultSatkers = []models.Satker{
	{KodeSatker: "7500", Nama: "BPS Provinsi Gorontalo", Eselon: "2"},
	{KodeSatker: "7501", Nama: "BPS Kab. Boalemo", Eselon: "3"},
	{KodeSatker: "7502", Nama: "BPS Kab. Gorontalo", Eselon: "3"},
	{KodeSatker: "7503", Nama: "BPS Kab. Pohuwato", Eselon: "3"},
	{KodeSatker: "7504", Nama: "BPS Kab. Bone Bolango", Eselon: "3"},
	{KodeSatker: "7505", Nama: "BPS Kab. Gorontalo Utara", Eselon: "3"},
	{KodeSatker: "7571", Nama: "BPS Kota Gorontalo", Eselon: "3"},
}

// DummySpmPrefixes mark SPMs created for demos and load tests.
var DummySpmPrefixes = []string{"SPM/TEST/", "SPM/RANDOM/"}

// AdminService backs the maintenance commands: seeding reference data and
// removing dummy SPMs.
type AdminService struct {
	satkers      SatkerUpserter
	kodeAkuns    KodeAkunUpserter
	flags        FlagUpserter
	spms         SpmCleaner
	excelService *ExcelService
	logger       *logrus.Logger
}

func NewAdminService(
	satkers SatkerUpserter,
	kodeAkuns KodeAkunUpserter,
	flags FlagUpserter,
	spms SpmCleaner,
	excelService *ExcelService,
	logger *logrus.Logger,
) *AdminService {
	return &AdminService{
		satkers:      satkers,
		kodeAkuns:    kodeAkuns,
		flags:        flags,
		spms:         spms,
		excelService: excelService,
		logger:       logger,
	}
}

func (s *AdminService) SeedSatkers(ctx context.Context, satkers []models.Satker) error {
	for i := range satkers {
		if err := s.satkers.Upsert(ctx, &satkers[i]); err != nil {
			return fmt.Errorf("seed satker %s: %w", satkers[i].KodeSatker, err)
		}
	}
	s.logger.WithField("count", len(satkers)).Info("satker seeded")
	return nil
}

// SeedFlags upserts every valid kode akun and required flag of a template.
// Invalid rows are reported in the result and skipped.
func (s *AdminService) SeedFlags(ctx context.Context, templatePath string) (*models.FlagImportResult, error) {
	template, err := s.excelService.ParseFlagTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	for _, entry := range template.Entries {
		kodeAkunID, err := s.kodeAkuns.Upsert(ctx, entry.Kode, entry.Nama)
		if err != nil {
			return nil, fmt.Errorf("row %d: seed kode akun %s: %w", entry.Row, entry.Kode, err)
		}
		for _, flag := range entry.Flags {
			flag.KodeAkunID = kodeAkunID
			if err := s.flags.Upsert(ctx, &flag); err != nil {
				return nil, fmt.Errorf("row %d: seed flag %q: %w", entry.Row, flag.Nama, err)
			}
		}
	}

	s.logger.WithFields(logrus.Fields{
		"kode_akun": template.Result.KodeAkunCount,
		"flags":     template.Result.FlagCount,
		"errors":    len(template.Result.ValidationErrors),
	}).Info("flag template seeded")
	return &template.Result, nil
}

// CleanupDummySpms deletes dummy SPMs. With dryRun it only counts them.
func (s *AdminService) CleanupDummySpms(ctx context.Context, dryRun bool) (int64, error) {
	if dryRun {
		return s.spms.CountByNomorPrefixes(ctx, DummySpmPrefixes)
	}

	deleted, err := s.spms.DeleteByNomorPrefixes(ctx, DummySpmPrefixes)
	if err != nil {
		return 0, fmt.Errorf("delete dummy spm: %w", err)
	}
	s.logger.WithField("deleted", deleted).Info("dummy spm removed")
	return deleted, nil
}

package service

import (
	"context"
	"fmt"

	"spm-backend/internal/models"

	"github.com/shopspring/decimal"
)

type ReportService struct {
	satkerRepo  SatkerRepository
	spmRepo     SpmRepository
	rincianRepo RincianRepository
	flagCounter *RequiredFlagCounter
	scorer      *CompletenessScorer
}

func NewReportService(
	satkerRepo SatkerRepository,
	spmRepo SpmRepository,
	rincianRepo RincianRepository,
	flagCounter *RequiredFlagCounter,
	scorer *CompletenessScorer,
) *ReportService {
	return &ReportService{
		satkerRepo:  satkerRepo,
		spmRepo:     spmRepo,
		rincianRepo: rincianRepo,
		flagCounter: flagCounter,
		scorer:      scorer,
	}
}

// SatkerPerformance summarises every satker for a budget year: SPM count,
// rejected count, rejection rate and the mean of the per-SPM completeness.
// Rates are rounded to two decimals. A satker without SPMs scores 100.
func (s *ReportService) SatkerPerformance(ctx context.Context, user models.CurrentUser, tahunAnggaran int) ([]models.SatkerPerformance, error) {
	if !user.IsAdmin() {
		return nil, ErrForbidden
	}
	if tahunAnggaran <= 0 {
		return nil, ErrInvalidYear
	}

	satkers, err := s.satkerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list satker: %w", err)
	}

	spms, _, err := s.spmRepo.FindAll(ctx, models.SpmFilter{TahunAnggaran: tahunAnggaran})
	if err != nil {
		return nil, fmt.Errorf("list spm: %w", err)
	}

	spmIDs := make([]int, len(spms))
	for i, spm := range spms {
		spmIDs[i] = spm.ID
	}
	details, err := s.rincianRepo.FindBySpmIDs(ctx, spmIDs)
	if err != nil {
		return nil, fmt.Errorf("load rincian: %w", err)
	}
	counts, err := s.flagCounter.Counts(ctx, kodeAkunIDsOf(details))
	if err != nil {
		return nil, err
	}

	rincianBySpm := make(map[int][]models.Rincian, len(spms))
	for _, d := range details {
		rincianBySpm[d.SpmID] = append(rincianBySpm[d.SpmID], d.Rincian)
	}

	spmsBySatker := make(map[int][]models.SpmListItem, len(satkers))
	for _, spm := range spms {
		spmsBySatker[spm.SatkerID] = append(spmsBySatker[spm.SatkerID], spm)
	}

	report := make([]models.SatkerPerformance, 0, len(satkers))
	for _, satker := range satkers {
		report = append(report, s.summarise(satker, spmsBySatker[satker.ID], rincianBySpm, counts))
	}
	return report, nil
}

func (s *ReportService) summarise(satker models.Satker, spms []models.SpmListItem, rincianBySpm map[int][]models.Rincian, counts map[int]int) models.SatkerPerformance {
	perf := models.SatkerPerformance{
		ID:                  satker.ID,
		Nama:                satker.Nama,
		TotalSpm:            len(spms),
		AverageCompleteness: 100,
	}
	if len(spms) == 0 {
		return perf
	}

	completeness := decimal.Zero
	for _, spm := range spms {
		if spm.Status == models.SpmStatusRejected {
			perf.TotalDitolak++
		}
		completeness = completeness.Add(decimal.NewFromFloat(s.scorer.mean(rincianBySpm[spm.ID], counts)))
	}

	total := decimal.NewFromInt(int64(len(spms)))
	perf.RejectionRate = decimal.NewFromInt(int64(perf.TotalDitolak)).
		Mul(decimal.NewFromInt(100)).
		Div(total).
		Round(2).
		InexactFloat64()
	perf.AverageCompleteness = completeness.Div(total).Round(2).InexactFloat64()
	return perf
}

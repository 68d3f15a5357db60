package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type SpmService struct {
	spmRepo      SpmRepository
	rincianRepo  RincianRepository
	satkerRepo   SatkerRepository
	flagCounter  *RequiredFlagCounter
	scorer       *CompletenessScorer
	excelService *ExcelService
	logger       *logrus.Logger
}

func NewSpmService(
	spmRepo SpmRepository,
	rincianRepo RincianRepository,
	satkerRepo SatkerRepository,
	flagCounter *RequiredFlagCounter,
	scorer *CompletenessScorer,
	excelService *ExcelService,
	logger *logrus.Logger,
) *SpmService {
	return &SpmService{
		spmRepo:      spmRepo,
		rincianRepo:  rincianRepo,
		satkerRepo:   satkerRepo,
		flagCounter:  flagCounter,
		scorer:       scorer,
		excelService: excelService,
		logger:       logger,
	}
}

// scopeSatker narrows a satker filter to the caller's own satker for op_satker.
func scopeSatker(user models.CurrentUser, requested int) (int, error) {
	if user.Role != models.RoleOpSatker {
		return requested, nil
	}
	if user.SatkerID == nil {
		return 0, ErrForbidden
	}
	return *user.SatkerID, nil
}

func canRead(user models.CurrentUser, satkerID int) bool {
	return user.Role != models.RoleOpSatker || user.OwnsSatker(satkerID)
}

func canWrite(user models.CurrentUser, satkerID int) bool {
	if user.Role == models.RoleViewer {
		return false
	}
	return canRead(user, satkerID)
}

// List returns the filtered SPMs, each with its rincian count and average completeness.
func (s *SpmService) List(ctx context.Context, user models.CurrentUser, filter models.SpmFilter) ([]models.SpmListItem, int64, error) {
	satkerID, err := scopeSatker(user, filter.SatkerID)
	if err != nil {
		return nil, 0, err
	}
	filter.SatkerID = satkerID

	items, total, err := s.spmRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list spm: %w", err)
	}
	if len(items) == 0 {
		return items, total, nil
	}

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	bySpm, counts, err := s.loadRincian(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		rincian := bySpm[items[i].ID]
		items[i].RincianCount = len(rincian)
		items[i].CompletenessPercentage = s.scorer.Average(rincian, counts)
	}
	return items, total, nil
}

// loadRincian fetches the rincian of the given SPMs grouped by SPM id,
// together with the required-flag counts of their kode akun.
func (s *SpmService) loadRincian(ctx context.Context, spmIDs []int) (map[int][]models.Rincian, map[int]int, error) {
	details, err := s.rincianRepo.FindBySpmIDs(ctx, spmIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load rincian: %w", err)
	}

	counts, err := s.flagCounter.Counts(ctx, kodeAkunIDsOf(details))
	if err != nil {
		return nil, nil, err
	}

	bySpm := make(map[int][]models.Rincian, len(spmIDs))
	for _, d := range details {
		r := d.WithKodeAkun()
		r.PersentaseKelengkapan = s.scorer.ScoreRincian(r, counts)
		bySpm[d.SpmID] = append(bySpm[d.SpmID], r)
	}
	return bySpm, counts, nil
}

func (s *SpmService) findSpm(ctx context.Context, id int) (*models.Spm, error) {
	spm, err := s.spmRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpmNotFound
		}
		return nil, err
	}
	return spm, nil
}

// Get returns one SPM with its satker and scored rincian.
func (s *SpmService) Get(ctx context.Context, user models.CurrentUser, id int) (*models.SpmDetail, error) {
	spm, err := s.findSpm(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canRead(user, spm.SatkerID) {
		return nil, ErrForbidden
	}

	satker, err := s.satkerRepo.FindByID(ctx, spm.SatkerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load satker: %w", err)
	}

	bySpm, _, err := s.loadRincian(ctx, []int{spm.ID})
	if err != nil {
		return nil, err
	}
	rincian := bySpm[spm.ID]
	if rincian == nil {
		rincian = []models.Rincian{}
	}

	return &models.SpmDetail{
		Spm:     *spm,
		Satker:  satker,
		Rincian: rincian,
	}, nil
}

var tanggalLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

func parseTanggal(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range tanggalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: tanggal %q is not a date", ErrInvalidSpm, s)
}

// buildSpm validates a request and turns it into the SPM header and its
// rincian. The total is always the sum of the rincian amounts.
func buildSpm(req models.SpmRequest) (*models.Spm, []models.Rincian, error) {
	if len(req.Rincian) == 0 {
		return nil, nil, ErrEmptyRincian
	}

	nomor := strings.TrimSpace(req.NomorSpm)
	if nomor == "" {
		return nil, nil, fmt.Errorf("%w: nomor_spm is required", ErrInvalidSpm)
	}
	if req.TahunAnggaran <= 0 {
		return nil, nil, fmt.Errorf("%w: tahun_anggaran is required", ErrInvalidSpm)
	}
	if req.SatkerID <= 0 {
		return nil, nil, fmt.Errorf("%w: satker_id is required", ErrInvalidSpm)
	}
	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		return nil, nil, err
	}

	var total int64
	rincian := make([]models.Rincian, 0, len(req.Rincian))
	for i, item := range req.Rincian {
		if item.KodeAkunID <= 0 {
			return nil, nil, fmt.Errorf("%w: rincian %d has no kode_akun_id", ErrInvalidSpm, i+1)
		}

		answers := make([]models.JawabanFlag, 0, len(item.JawabanFlags))
		for _, answer := range item.JawabanFlags {
			kind, ok := models.ParseAnswerKind(answer.Tipe)
			if !ok {
				return nil, nil, fmt.Errorf("%w: rincian %d has unknown answer %q", ErrInvalidSpm, i+1, answer.Tipe)
			}
			answers = append(answers, models.JawabanFlag{Nama: strings.TrimSpace(answer.Nama), Tipe: kind})
		}

		total += item.Jumlah
		rincian = append(rincian, models.Rincian{
			ID:              item.ID,
			KodeAkunID:      item.KodeAkunID,
			KodeProgram:     strings.TrimSpace(item.KodeProgram),
			KodeKegiatan:    strings.TrimSpace(item.KodeKegiatan),
			KodeKRO:         strings.TrimSpace(item.KodeKRO),
			KodeRO:          strings.TrimSpace(item.KodeRO),
			KodeKomponen:    strings.TrimSpace(item.KodeKomponen),
			KodeSubkomponen: strings.TrimSpace(item.KodeSubkomponen),
			Jumlah:          item.Jumlah,
			Uraian:          strings.TrimSpace(item.Uraian),
			JawabanFlags:    answers,
		})
	}

	spm := &models.Spm{
		NomorSpm:      nomor,
		TahunAnggaran: req.TahunAnggaran,
		Tanggal:       tanggal,
		TotalAnggaran: total,
		DriveLink:     req.DriveLink,
		SatkerID:      req.SatkerID,
	}
	return spm, rincian, nil
}

// Create stores a new PENDING SPM. op_satker callers always file for their own satker.
func (s *SpmService) Create(ctx context.Context, user models.CurrentUser, req models.SpmRequest) (*models.Spm, error) {
	if user.Role == models.RoleViewer {
		return nil, ErrForbidden
	}
	if user.Role == models.RoleOpSatker {
		if user.SatkerID == nil || (req.SatkerID != 0 && req.SatkerID != *user.SatkerID) {
			return nil, ErrForbidden
		}
		req.SatkerID = *user.SatkerID
	}

	spm, rincian, err := buildSpm(req)
	if err != nil {
		return nil, err
	}
	spm.Status = models.SpmStatusPending

	if err := s.spmRepo.Create(ctx, spm, rincian); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateNomorSpm
		}
		return nil, fmt.Errorf("create spm: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"spm_id":    spm.ID,
		"nomor_spm": spm.NomorSpm,
		"user_id":   user.ID,
		"rincian":   len(rincian),
	}).Info("spm created")
	return spm, nil
}

// Update replaces an SPM and its rincian. A REJECTED SPM goes back to PENDING
// with its rejection comment cleared.
func (s *SpmService) Update(ctx context.Context, user models.CurrentUser, id int, req models.SpmRequest) (*models.Spm, error) {
	if user.Role == models.RoleViewer {
		return nil, ErrForbidden
	}

	existing, err := s.findSpm(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canWrite(user, existing.SatkerID) {
		return nil, ErrForbidden
	}
	if existing.Status == models.SpmStatusAccepted {
		return nil, ErrSpmLocked
	}
	if user.Role == models.RoleOpSatker {
		req.SatkerID = existing.SatkerID
	}

	spm, rincian, err := buildSpm(req)
	if err != nil {
		return nil, err
	}
	spm.ID = existing.ID
	spm.CreatedAt = existing.CreatedAt
	spm.Status = existing.Status
	spm.RejectionComment = existing.RejectionComment
	if existing.Status == models.SpmStatusRejected {
		spm.Status = models.SpmStatusPending
		spm.RejectionComment = nil
	}

	if err := s.spmRepo.Update(ctx, spm, rincian); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateNomorSpm
		}
		return nil, fmt.Errorf("update spm %d: %w", id, err)
	}

	s.logger.WithFields(logrus.Fields{"spm_id": id, "user_id": user.ID, "status": spm.Status}).Info("spm updated")
	return spm, nil
}

func (s *SpmService) Delete(ctx context.Context, user models.CurrentUser, id int) error {
	if user.Role == models.RoleViewer {
		return ErrForbidden
	}

	existing, err := s.findSpm(ctx, id)
	if err != nil {
		return err
	}
	if !canWrite(user, existing.SatkerID) {
		return ErrForbidden
	}
	if existing.Status == models.SpmStatusAccepted {
		return ErrSpmLocked
	}

	if err := s.spmRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSpmNotFound
		}
		return fmt.Errorf("delete spm %d: %w", id, err)
	}

	s.logger.WithFields(logrus.Fields{"spm_id": id, "user_id": user.ID}).Info("spm deleted")
	return nil
}

// UpdateStatus accepts or rejects an SPM. Only administrators may review, and
// the comment is only kept on rejection.
func (s *SpmService) UpdateStatus(ctx context.Context, user models.CurrentUser, id int, req models.SpmStatusRequest) (*models.Spm, error) {
	if !user.IsAdmin() {
		return nil, ErrForbidden
	}

	status, ok := models.ParseSpmStatus(req.Status)
	if !ok || status == models.SpmStatusPending {
		return nil, ErrInvalidStatus
	}

	spm, err := s.findSpm(ctx, id)
	if err != nil {
		return nil, err
	}

	var comment *string
	if status == models.SpmStatusRejected {
		if c := strings.TrimSpace(req.Comment); c != "" {
			comment = &c
		}
	}

	if err := s.spmRepo.UpdateStatus(ctx, id, status, comment); err != nil {
		return nil, fmt.Errorf("update status of spm %d: %w", id, err)
	}

	spm.Status = status
	spm.RejectionComment = comment
	s.logger.WithFields(logrus.Fields{"spm_id": id, "status": status, "reviewer_id": user.ID}).Info("spm reviewed")
	return spm, nil
}

// Export writes the filtered SPM list, unpaginated, to an Excel file.
func (s *SpmService) Export(ctx context.Context, user models.CurrentUser, filter models.SpmFilter, outputPath string) error {
	filter.Page = 1
	filter.Limit = 0

	items, _, err := s.List(ctx, user, filter)
	if err != nil {
		return err
	}
	return s.excelService.ExportSpms(items, outputPath)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"spm-backend/internal/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

const (
	TypeSaktiReconcile = "sakti:reconcile"

	JobStatusQueued    = "queued"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ReconcileTaskPayload is the asynq payload of a queued SAKTI validation.
type ReconcileTaskPayload struct {
	JobID         string `json:"job_id"`
	TahunAnggaran int    `json:"tahun_anggaran"`
	SatkerID      int    `json:"satker_id"`
	FilePath      string `json:"file_path"`
}

func NewReconcileTask(payload ReconcileTaskPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSaktiReconcile, data), nil
}

// SaktiService validates SAKTI realisasi reports against the stored rincian.
type SaktiService struct {
	rincianRepo  RincianRepository
	reconciler   *SaktiReconciler
	excelService *ExcelService
	jobs         JobStore
	enqueuer     TaskEnqueuer
	logger       *logrus.Logger
}

func NewSaktiService(
	rincianRepo RincianRepository,
	reconciler *SaktiReconciler,
	excelService *ExcelService,
	jobs JobStore,
	enqueuer TaskEnqueuer,
	logger *logrus.Logger,
) *SaktiService {
	return &SaktiService{
		rincianRepo:  rincianRepo,
		reconciler:   reconciler,
		excelService: excelService,
		jobs:         jobs,
		enqueuer:     enqueuer,
		logger:       logger,
	}
}

// reconcileTarget resolves which satker a caller may validate. op_satker
// always validates its own satker; everyone else has to name one.
func reconcileTarget(user models.CurrentUser, tahunAnggaran, satkerID int) (int, error) {
	if tahunAnggaran <= 0 {
		return 0, ErrInvalidYear
	}
	if user.Role == models.RoleOpSatker {
		if user.SatkerID == nil {
			return 0, ErrForbidden
		}
		return *user.SatkerID, nil
	}
	if satkerID <= 0 {
		return 0, ErrSatkerRequired
	}
	return satkerID, nil
}

// ValidateRows reconciles already-decoded report rows.
func (s *SaktiService) ValidateRows(ctx context.Context, user models.CurrentUser, tahunAnggaran, satkerID int, rows [][]string) ([]models.ComparisonResult, error) {
	target, err := reconcileTarget(user, tahunAnggaran, satkerID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, ErrInvalidReport
	}
	return s.reconcile(ctx, tahunAnggaran, target, rows)
}

// ValidateFile reconciles the first sheet of an xlsx report on disk.
func (s *SaktiService) ValidateFile(ctx context.Context, user models.CurrentUser, tahunAnggaran, satkerID int, filePath string) ([]models.ComparisonResult, error) {
	target, err := reconcileTarget(user, tahunAnggaran, satkerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.excelService.ReadSheetRows(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	return s.reconcile(ctx, tahunAnggaran, target, rows)
}

func (s *SaktiService) reconcile(ctx context.Context, tahunAnggaran, satkerID int, rows [][]string) ([]models.ComparisonResult, error) {
	items, err := s.rincianRepo.FindForReconciliation(ctx, tahunAnggaran, satkerID)
	if err != nil {
		return nil, fmt.Errorf("load rincian for reconciliation: %w", err)
	}

	results := s.reconciler.Reconcile(rows, items)

	summary := summarizeComparison(results)
	s.logger.WithFields(logrus.Fields{
		"tahun_anggaran": tahunAnggaran,
		"satker_id":      satkerID,
		"report_rows":    len(rows),
		"match":          summary[models.ComparisonMatch],
		"mismatch":       summary[models.ComparisonMismatch],
		"not_found":      summary[models.ComparisonNotFound],
	}).Info("sakti report reconciled")

	return results, nil
}

func summarizeComparison(results []models.ComparisonResult) map[models.ComparisonStatus]int {
	summary := make(map[models.ComparisonStatus]int, 3)
	for _, r := range results {
		summary[r.Status]++
	}
	return summary
}

// EnqueueValidation queues the reconciliation of an uploaded report file.
// The worker owns the file from here on and removes it when done.
func (s *SaktiService) EnqueueValidation(ctx context.Context, user models.CurrentUser, tahunAnggaran, satkerID int, filePath string) (*models.ReconcileJob, error) {
	if s.jobs == nil || s.enqueuer == nil {
		return nil, ErrJobsDisabled
	}
	target, err := reconcileTarget(user, tahunAnggaran, satkerID)
	if err != nil {
		return nil, err
	}

	job := &models.ReconcileJob{
		ID:            uuid.New().String(),
		Status:        JobStatusQueued,
		TahunAnggaran: tahunAnggaran,
		SatkerID:      target,
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}

	task, err := NewReconcileTask(ReconcileTaskPayload{
		JobID:         job.ID,
		TahunAnggaran: tahunAnggaran,
		SatkerID:      target,
		FilePath:      filePath,
	})
	if err != nil {
		return nil, err
	}

	info, err := s.enqueuer.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(5*time.Minute))
	if err != nil {
		job.Status = JobStatusFailed
		job.Error = "reconciliation could not be queued"
		if saveErr := s.jobs.Save(ctx, job); saveErr != nil {
			s.logger.WithError(saveErr).WithField("job_id", job.ID).Warn("failed to mark unqueued job")
		}
		return nil, fmt.Errorf("enqueue reconciliation: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"job_id": job.ID, "task_id": info.ID, "satker_id": target}).Info("sakti reconciliation queued")
	return job, nil
}

// GetJob returns a queued or finished reconciliation job.
func (s *SaktiService) GetJob(ctx context.Context, user models.CurrentUser, id string) (*models.ReconcileJob, error) {
	if s.jobs == nil {
		return nil, ErrJobsDisabled
	}
	job, err := s.jobs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	if !canRead(user, job.SatkerID) {
		return nil, ErrForbidden
	}
	return job, nil
}

// ProcessJob runs a queued reconciliation and stores its outcome. Transient
// failures are returned so asynq retries the task; the uploaded file is kept
// until a final state has been stored or no retry is left.
func (s *SaktiService) ProcessJob(ctx context.Context, payload ReconcileTaskPayload) error {
	job := &models.ReconcileJob{
		ID:            payload.JobID,
		TahunAnggaran: payload.TahunAnggaran,
		SatkerID:      payload.SatkerID,
	}
	lastAttempt := isLastAttempt(ctx)
	log := s.logger.WithField("job_id", payload.JobID)

	results, err := s.processFile(ctx, payload)
	switch {
	case err == nil:
		job.Status = JobStatusCompleted
		job.Results = results
	case errors.Is(err, ErrInvalidReport) || lastAttempt:
		job.Status = JobStatusFailed
		job.Error = err.Error()
		log.WithError(err).Error("sakti reconciliation failed")
	default:
		log.WithError(err).Warn("sakti reconciliation will be retried")
		return fmt.Errorf("reconcile job %s: %w", job.ID, err)
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		if lastAttempt {
			removeUpload(log, payload.FilePath)
		}
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	removeUpload(log, payload.FilePath)
	return nil
}

// isLastAttempt reports whether asynq will not retry the running task again.
// Outside a task handler it is false.
func isLastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return false
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	return ok && retried >= maxRetry
}

func removeUpload(log *logrus.Entry, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to remove uploaded report")
	}
}

func (s *SaktiService) processFile(ctx context.Context, payload ReconcileTaskPayload) ([]models.ComparisonResult, error) {
	rows, err := s.excelService.ReadSheetRows(payload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	return s.reconcile(ctx, payload.TahunAnggaran, payload.SatkerID, rows)
}

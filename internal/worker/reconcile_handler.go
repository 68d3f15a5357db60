package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"spm-backend/internal/service"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

// ReconcileProcessor runs a queued SAKTI validation; *service.SaktiService
// satisfies it.
type ReconcileProcessor interface {
	ProcessJob(ctx context.Context, payload service.ReconcileTaskPayload) error
}

type ReconcileTaskHandler struct {
	processor ReconcileProcessor
	logger    *logrus.Logger
}

func NewReconcileTaskHandler(processor ReconcileProcessor, logger *logrus.Logger) *ReconcileTaskHandler {
	return &ReconcileTaskHandler{
		processor: processor,
		logger:    logger,
	}
}

func (h *ReconcileTaskHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload service.ReconcileTaskPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.JobID == "" || payload.FilePath == "" {
		return fmt.Errorf("incomplete reconcile payload: %w", asynq.SkipRetry)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job_id":         payload.JobID,
		"tahun_anggaran": payload.TahunAnggaran,
		"satker_id":      payload.SatkerID,
	})
	log.Info("starting sakti reconciliation")

	if err := h.processor.ProcessJob(ctx, payload); err != nil {
		return fmt.Errorf("process job %s: %w", payload.JobID, err)
	}

	log.Info("sakti reconciliation finished")
	return nil
}

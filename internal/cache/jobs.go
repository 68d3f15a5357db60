package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"spm-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const reconcileJobKeyPrefix = "spm:reconcile_job:"

// ReconcileJobs keeps asynchronous reconciliation jobs as JSON documents.
type ReconcileJobs struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewReconcileJobs(client *redis.Client, ttl time.Duration) *ReconcileJobs {
	return &ReconcileJobs{redis: client, ttl: ttl}
}

func (s *ReconcileJobs) Save(ctx context.Context, job *models.ReconcileJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	return s.redis.Set(ctx, reconcileJobKeyPrefix+job.ID, data, s.ttl).Err()
}

// Get returns nil without an error when the job is unknown or expired.
func (s *ReconcileJobs) Get(ctx context.Context, id string) (*models.ReconcileJob, error) {
	data, err := s.redis.Get(ctx, reconcileJobKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var job models.ReconcileJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", id, err)
	}
	return &job, nil
}

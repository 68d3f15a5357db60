package service

import (
	"context"

	"spm-backend/internal/models"

	"github.com/hibiken/asynq"
)

// The service layer depends on these interfaces rather than on the concrete
// sqlx repositories and redis stores.
//
//go:generate mockgen -destination=mocks/mock_interface.go -package=mocks -source=interface.go

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context) ([]models.UserListItem, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

type SatkerRepository interface {
	FindAll(ctx context.Context) ([]models.Satker, error)
	FindByID(ctx context.Context, id int) (*models.Satker, error)
}

type KodeAkunRepository interface {
	FindAll(ctx context.Context) ([]models.KodeAkun, error)
	FindByID(ctx context.Context, id int) (*models.KodeAkun, error)
}

type FlagRepository interface {
	FindByKodeAkun(ctx context.Context, kodeAkunID int) ([]models.Flag, error)
	FindByID(ctx context.Context, id int) (*models.Flag, error)
	CountByKodeAkun(ctx context.Context, kodeAkunIDs []int) (map[int]int, error)
	Create(ctx context.Context, flag *models.Flag) error
	Update(ctx context.Context, flag *models.Flag) error
	Delete(ctx context.Context, id int) error
}

type SpmRepository interface {
	FindAll(ctx context.Context, filter models.SpmFilter) ([]models.SpmListItem, int64, error)
	FindByID(ctx context.Context, id int) (*models.Spm, error)
	Create(ctx context.Context, spm *models.Spm, rincian []models.Rincian) error
	Update(ctx context.Context, spm *models.Spm, rincian []models.Rincian) error
	Delete(ctx context.Context, id int) error
	UpdateStatus(ctx context.Context, id int, status models.SpmStatus, comment *string) error
}

type RincianRepository interface {
	FindAll(ctx context.Context, filter models.RincianFilter) ([]models.RincianDetail, error)
	FindByID(ctx context.Context, id int) (*models.RincianDetail, error)
	FindBySpmIDs(ctx context.Context, spmIDs []int) ([]models.RincianDetail, error)
	FindForReconciliation(ctx context.Context, tahunAnggaran, satkerID int) ([]models.RincianDetail, error)
}

// FlagCountCache caches the number of required flags per kode akun id.
type FlagCountCache interface {
	GetMany(ctx context.Context, kodeAkunIDs []int) (map[int]int, error)
	SetMany(ctx context.Context, counts map[int]int) error
	Invalidate(ctx context.Context, kodeAkunID int) error
}

// JobStore keeps asynchronous reconciliation jobs.
type JobStore interface {
	Save(ctx context.Context, job *models.ReconcileJob) error
	Get(ctx context.Context, id string) (*models.ReconcileJob, error)
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Admin tooling only.

type SatkerUpserter interface {
	Upsert(ctx context.Context, satker *models.Satker) error
}

type KodeAkunUpserter interface {
	Upsert(ctx context.Context, kode, nama string) (int, error)
}

type FlagUpserter interface {
	Upsert(ctx context.Context, flag *models.Flag) error
}

type SpmCleaner interface {
	CountByNomorPrefixes(ctx context.Context, prefixes []string) (int64, error)
	DeleteByNomorPrefixes(ctx context.Context, prefixes []string) (int64, error)
}

package worker

import (
	"spm-backend/internal/cache"
	"spm-backend/internal/config"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func RegisterHandlers(mux *asynq.ServeMux, db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) {
	logger := utils.GetLogger()

	reconciler := service.NewSaktiReconciler(service.SaktiColumns{
		KodeAkun:  cfg.SaktiKodeAkunColumn,
		Uraian:    cfg.SaktiUraianColumn,
		Realisasi: cfg.SaktiRealisasiColumn,
	})
	saktiService := service.NewSaktiService(
		repository.NewRincianRepository(db),
		reconciler,
		service.NewExcelService(),
		cache.NewReconcileJobs(redisClient, cfg.ReconcileResultTTL),
		nil, // the worker never enqueues
		logger,
	)

	// Register task handlers
	reconcileHandler := NewReconcileTaskHandler(saktiService, logger)
	mux.HandleFunc(service.TypeSaktiReconcile, reconcileHandler.Handle)
}

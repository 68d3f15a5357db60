package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"spm-backend/internal/config"
	"spm-backend/internal/database"
	"spm-backend/internal/utils"
	"spm-backend/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := utils.GetLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.NewMySQL(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Job state lives in redis; the worker cannot run without it
	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Create Asynq server
	srv := asynq.NewServer(
		database.AsynqRedisOpt(cfg),
		asynq.Config{
			Concurrency: cfg.WorkerConcurrency,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.WithFields(logrus.Fields{
					"task_type": task.Type(),
				}).WithError(err).Error("task failed")
			}),
			Logger: logger,
		},
	)

	// Register task handlers
	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, db, redisClient, cfg)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down worker...")
		srv.Shutdown()
	}()

	// Start worker
	logger.Infof("Worker starting with concurrency: %d", cfg.WorkerConcurrency)
	if err := srv.Run(mux); err != nil {
		logger.Fatalf("Failed to start worker: %v", err)
	}

	logger.Info("Worker exited")
}

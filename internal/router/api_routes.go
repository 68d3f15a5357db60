package router

import (
	"spm-backend/internal/cache"
	"spm-backend/internal/config"
	"spm-backend/internal/handler"
	"spm-backend/internal/middleware"
	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Handlers groups every API handler.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Reference *handler.ReferenceHandler
	Spm       *handler.SpmHandler
	Sakti     *handler.SaktiHandler
	Rincian   *handler.RincianHandler
	Report    *handler.ReportHandler
}

// NewHandlers wires repositories, services and handlers. Without redis the
// flag count cache and background reconciliation are disabled.
func NewHandlers(db *sqlx.DB, redisClient *redis.Client, asynqClient *asynq.Client, cfg *config.Config) (*Handlers, error) {
	logger := utils.GetLogger()

	rule, err := service.CompletenessRuleByVersion(cfg.CompletenessRule)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	satkerRepo := repository.NewSatkerRepository(db)
	kodeAkunRepo := repository.NewKodeAkunRepository(db)
	flagRepo := repository.NewFlagRepository(db)
	spmRepo := repository.NewSpmRepository(db)
	rincianRepo := repository.NewRincianRepository(db)

	var (
		flagCache service.FlagCountCache
		jobs      service.JobStore
		enqueuer  service.TaskEnqueuer
	)
	if redisClient != nil {
		flagCache = cache.NewFlagCounts(redisClient, cfg.FlagCountCacheTTL)
		jobs = cache.NewReconcileJobs(redisClient, cfg.ReconcileResultTTL)
	}
	if asynqClient != nil {
		enqueuer = asynqClient
	}

	// Initialize services
	scorer := service.NewCompletenessScorer(rule)
	flagCounter := service.NewRequiredFlagCounter(flagRepo, flagCache, logger)
	excelService := service.NewExcelService()
	reconciler := service.NewSaktiReconciler(service.SaktiColumns{
		KodeAkun:  cfg.SaktiKodeAkunColumn,
		Uraian:    cfg.SaktiUraianColumn,
		Realisasi: cfg.SaktiRealisasiColumn,
	})

	authService := service.NewAuthService(userRepo, cfg, logger)
	userService := service.NewUserService(userRepo, logger)
	referenceService := service.NewReferenceService(satkerRepo, kodeAkunRepo, flagRepo, flagCounter, logger)
	spmService := service.NewSpmService(spmRepo, rincianRepo, satkerRepo, flagCounter, scorer, excelService, logger)
	rincianService := service.NewRincianService(rincianRepo, flagCounter, scorer)
	reportService := service.NewReportService(satkerRepo, spmRepo, rincianRepo, flagCounter, scorer)
	saktiService := service.NewSaktiService(rincianRepo, reconciler, excelService, jobs, enqueuer, logger)

	// Initialize handlers
	return &Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(userService),
		Reference: handler.NewReferenceHandler(referenceService),
		Spm:       handler.NewSpmHandler(spmService, cfg),
		Sakti:     handler.NewSaktiHandler(saktiService, excelService, cfg),
		Rincian:   handler.NewRincianHandler(rincianService),
		Report:    handler.NewReportHandler(reportService),
	}, nil
}

// RegisterAPIRoutes mounts the JSON API on router.
func RegisterAPIRoutes(router fiber.Router, h *Handlers, cfg *config.Config) {
	adminOnly := middleware.AdminOnly()

	// Public routes
	auth := router.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)

	// Protected routes
	protected := router.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/me", h.Auth.Me)

	// User routes
	users := protected.Group("/users", adminOnly)
	users.Get("/", h.User.GetAll)
	users.Post("/", h.User.Create)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	// Reference data
	protected.Get("/satker", h.Reference.GetSatkers)
	protected.Get("/kode-akun", h.Reference.GetKodeAkuns)
	protected.Get("/kode-akun/:id/flags", h.Reference.GetFlagsOfKodeAkun)

	flags := protected.Group("/flags", adminOnly)
	flags.Post("/", h.Reference.CreateFlag)
	flags.Put("/:id", h.Reference.UpdateFlag)
	flags.Delete("/:id", h.Reference.DeleteFlag)

	// SPM routes; fixed paths before /:id
	spm := protected.Group("/spm")
	spm.Get("/", h.Spm.GetAll)
	spm.Post("/", h.Spm.Create)
	spm.Get("/export", h.Spm.Export)
	spm.Post("/validate-report", h.Sakti.ValidateReport)
	spm.Post("/validate-report/upload", h.Sakti.ValidateUpload)
	spm.Post("/validate-report/async", h.Sakti.ValidateAsync)
	spm.Get("/validate-report/jobs/:id", h.Sakti.GetJob)
	spm.Get("/:id", h.Spm.GetByID)
	spm.Put("/:id", h.Spm.Update)
	spm.Delete("/:id", h.Spm.Delete)
	spm.Patch("/:id/status", middleware.RequireRoles(models.RoleOpProv, models.RoleSupervisor), h.Spm.UpdateStatus)

	// Rincian routes
	rincian := protected.Group("/rincian")
	rincian.Get("/", h.Rincian.GetAll)
	rincian.Get("/:id", h.Rincian.GetByID)

	// Reports
	reports := protected.Group("/reports", adminOnly)
	reports.Get("/satker-performance", h.Report.SatkerPerformance)
}

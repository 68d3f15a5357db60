package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spm-backend/internal/config"
	"spm-backend/internal/database"
	"spm-backend/internal/router"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/hibiken/asynq"
)

func main() {
	log := utils.GetLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis (optional - for caching and background jobs)
	var asynqClient *asynq.Client
	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		log.Warnf("Failed to connect to Redis: %v", err)
		log.Warn("Application will continue without Redis (caching and background jobs disabled)")
	} else {
		defer redisClient.Close()

		asynqClient = asynq.NewClient(database.AsynqRedisOpt(cfg))
		defer asynqClient.Close()
	}

	for _, dir := range []string{cfg.UploadPath, cfg.ExportPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// Initialize template engine
	engine := html.New("./views", ".html")
	engine.Reload(cfg.AppEnv == "development")

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		Views:        engine,
		BodyLimit:    cfg.UploadMaxSize,
		ErrorHandler: errorHandler(cfg),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Setup routes
	if err := router.Setup(app, db, redisClient, asynqClient, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := fmt.Sprintf(":%s", cfg.AppPort)
	log.Infof("Server starting on %s", port)
	if err := app.Listen(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Info("Server exited")
}

func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Check if request expects JSON
		if c.Accepts("text/html", "application/json") != "text/html" {
			return utils.ErrorResponse(c, code, message, err)
		}

		// Return HTML error page
		return c.Status(code).Render("error", fiber.Map{
			"AppName": cfg.AppName,
			"Code":    code,
			"Message": message,
		})
	}
}

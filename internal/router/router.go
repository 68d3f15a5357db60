package router

import (
	"spm-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

func Setup(app *fiber.App, db *sqlx.DB, redisClient *redis.Client, asynqClient *asynq.Client, cfg *config.Config) error {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
		})
	})

	handlers, err := NewHandlers(db, redisClient, asynqClient, cfg)
	if err != nil {
		return err
	}

	// API routes (JSON)
	api := app.Group("/api/v1")
	RegisterAPIRoutes(api, handlers, cfg)
	return nil
}

// RouteInfo is one registered route, as listed by the CLI.
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// ListAPIRoutes returns the API routes without connecting to any backend.
func ListAPIRoutes(cfg *config.Config) []RouteInfo {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterAPIRoutes(app.Group("/api/v1"), &Handlers{}, cfg)

	var routes []RouteInfo
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		routes = append(routes, RouteInfo{Method: r.Method, Path: r.Path})
	}
	return routes
}

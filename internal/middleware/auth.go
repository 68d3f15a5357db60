package middleware

import (
	"strings"

	"spm-backend/internal/config"
	"spm-backend/internal/models"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization header is required", nil)
		}

		// Check Bearer prefix
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid authorization header format", nil)
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token", nil)
		}

		// Store claims in context
		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		c.Locals(currentUserKey, claims.CurrentUser())

		return c.Next()
	}
}

// CurrentUser returns the caller stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (models.CurrentUser, bool) {
	user, ok := c.Locals(currentUserKey).(models.CurrentUser)
	return user, ok
}

// RequireRoles lets the request through only for the given roles.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this resource", nil)
	}
}

// AdminOnly allows op_prov and supervisor.
func AdminOnly() fiber.Handler {
	return RequireRoles(models.RoleOpProv, models.RoleSupervisor)
}

package handler

import (
	"spm-backend/internal/middleware"
	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	// Validate input
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required", nil)
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return serviceError(c, err, "Login failed")
	}

	return utils.SuccessResponse(c, "Login successful", resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// For JWT, logout is handled client-side by removing the token
	return utils.SuccessResponse(c, "Logout successful", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	user, err := h.authService.Me(c.UserContext(), current.ID)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, "User retrieved successfully", user)
}

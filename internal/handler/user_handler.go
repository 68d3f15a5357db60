package handler

import (
	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve users", err)
	}

	return utils.SuccessResponse(c, "Users retrieved successfully", users)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	user, err := h.userService.Create(c.UserContext(), req)
	if err != nil {
		return serviceError(c, err, "Failed to create user")
	}

	return utils.CreatedResponse(c, "User created successfully", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID", nil)
	}

	var req models.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	user, err := h.userService.Update(c.UserContext(), id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update user")
	}

	return utils.SuccessResponse(c, "User updated successfully", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID", nil)
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete user")
	}

	return utils.SuccessResponse(c, "User deleted successfully", nil)
}

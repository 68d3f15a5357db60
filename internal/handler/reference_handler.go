package handler

import (
	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler serves satker, kode akun and flag master data.
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: referenceService,
	}
}

func (h *ReferenceHandler) GetSatkers(c *fiber.Ctx) error {
	satkers, err := h.referenceService.ListSatker(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve satker", err)
	}

	return utils.SuccessResponse(c, "Satker retrieved successfully", satkers)
}

func (h *ReferenceHandler) GetKodeAkuns(c *fiber.Ctx) error {
	kodeAkuns, err := h.referenceService.ListKodeAkun(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve kode akun", err)
	}

	return utils.SuccessResponse(c, "Kode akun retrieved successfully", kodeAkuns)
}

func (h *ReferenceHandler) GetFlagsOfKodeAkun(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid kode akun ID", nil)
	}

	flags, err := h.referenceService.FlagsOfKodeAkun(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve flags")
	}

	return utils.SuccessResponse(c, "Flags retrieved successfully", flags)
}

func (h *ReferenceHandler) CreateFlag(c *fiber.Ctx) error {
	var req models.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	flag, err := h.referenceService.CreateFlag(c.UserContext(), req)
	if err != nil {
		return serviceError(c, err, "Failed to create flag")
	}

	return utils.CreatedResponse(c, "Flag created successfully", flag)
}

func (h *ReferenceHandler) UpdateFlag(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid flag ID", nil)
	}

	var req models.FlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	flag, err := h.referenceService.UpdateFlag(c.UserContext(), id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update flag")
	}

	return utils.SuccessResponse(c, "Flag updated successfully", flag)
}

func (h *ReferenceHandler) DeleteFlag(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid flag ID", nil)
	}

	if err := h.referenceService.DeleteFlag(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete flag")
	}

	return utils.SuccessResponse(c, "Flag deleted successfully", nil)
}

package handler

import (
	"spm-backend/internal/middleware"
	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type RincianHandler struct {
	rincianService *service.RincianService
}

func NewRincianHandler(rincianService *service.RincianService) *RincianHandler {
	return &RincianHandler{
		rincianService: rincianService,
	}
}

func (h *RincianHandler) GetAll(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	filter := models.RincianFilter{
		SatkerID:      c.QueryInt("satker_id"),
		TahunAnggaran: c.QueryInt("tahun"),
	}
	rincian, err := h.rincianService.List(c.UserContext(), user, filter)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve rincian")
	}

	return utils.SuccessResponse(c, "Rincian retrieved successfully", rincian)
}

func (h *RincianHandler) GetByID(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid rincian ID", nil)
	}

	rincian, err := h.rincianService.Get(c.UserContext(), user, id)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve rincian")
	}

	return utils.SuccessResponse(c, "Rincian retrieved successfully", rincian)
}

package handler

import (
	"fmt"
	"path/filepath"
	"time"

	"spm-backend/internal/config"
	"spm-backend/internal/middleware"
	"spm-backend/internal/models"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SpmHandler struct {
	spmService *service.SpmService
	cfg        *config.Config
}

func NewSpmHandler(spmService *service.SpmService, cfg *config.Config) *SpmHandler {
	return &SpmHandler{
		spmService: spmService,
		cfg:        cfg,
	}
}

func spmFilterFromQuery(c *fiber.Ctx) models.SpmFilter {
	params := utils.GetPaginationParams(c)
	return models.SpmFilter{
		TahunAnggaran: c.QueryInt("tahun"),
		SatkerID:      c.QueryInt("satker_id"),
		Page:          params.Page,
		Limit:         params.Limit,
	}
}

func (h *SpmHandler) GetAll(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	filter := spmFilterFromQuery(c)
	items, total, err := h.spmService.List(c.UserContext(), user, filter)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve SPM")
	}

	pagination := utils.CalculatePagination(filter.Page, filter.Limit, total)
	return utils.PaginatedResponseBuilder(c, "SPM retrieved successfully", items, pagination)
}

func (h *SpmHandler) GetByID(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid SPM ID", nil)
	}

	spm, err := h.spmService.Get(c.UserContext(), user, id)
	if err != nil {
		return serviceError(c, err, "Failed to retrieve SPM")
	}

	return utils.SuccessResponse(c, "SPM retrieved successfully", spm)
}

func (h *SpmHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req models.SpmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	spm, err := h.spmService.Create(c.UserContext(), user, req)
	if err != nil {
		return serviceError(c, err, "Failed to create SPM")
	}

	return utils.CreatedResponse(c, "SPM created successfully", spm)
}

func (h *SpmHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid SPM ID", nil)
	}

	var req models.SpmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	spm, err := h.spmService.Update(c.UserContext(), user, id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update SPM")
	}

	return utils.SuccessResponse(c, "SPM updated successfully", spm)
}

func (h *SpmHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid SPM ID", nil)
	}

	if err := h.spmService.Delete(c.UserContext(), user, id); err != nil {
		return serviceError(c, err, "Failed to delete SPM")
	}

	return utils.SuccessResponse(c, "SPM deleted successfully", nil)
}

func (h *SpmHandler) UpdateStatus(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	id, ok := paramID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid SPM ID", nil)
	}

	var req models.SpmStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	spm, err := h.spmService.UpdateStatus(c.UserContext(), user, id, req)
	if err != nil {
		return serviceError(c, err, "Failed to update SPM status")
	}

	return utils.SuccessResponse(c, "SPM status updated successfully", spm)
}

// Export downloads the filtered SPM list as an Excel workbook.
func (h *SpmHandler) Export(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	filename := fmt.Sprintf("spm_%s_%s.xlsx", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	outputPath := filepath.Join(h.cfg.ExportPath, filename)

	if err := h.spmService.Export(c.UserContext(), user, spmFilterFromQuery(c), outputPath); err != nil {
		return serviceError(c, err, "Failed to export SPM")
	}

	return sendExport(c, outputPath, filename)
}

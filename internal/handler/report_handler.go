package handler

import (
	"spm-backend/internal/middleware"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) SatkerPerformance(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	report, err := h.reportService.SatkerPerformance(c.UserContext(), user, c.QueryInt("tahun"))
	if err != nil {
		return serviceError(c, err, "Failed to build satker performance report")
	}

	return utils.SuccessResponse(c, "Satker performance retrieved successfully", report)
}

package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spm-backend/internal/config"
	"spm-backend/internal/middleware"
	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SaktiHandler validates SAKTI realisasi reports against the stored rincian.
type SaktiHandler struct {
	saktiService *service.SaktiService
	excelService *service.ExcelService
	cfg          *config.Config
}

func NewSaktiHandler(saktiService *service.SaktiService, excelService *service.ExcelService, cfg *config.Config) *SaktiHandler {
	return &SaktiHandler{
		saktiService: saktiService,
		excelService: excelService,
		cfg:          cfg,
	}
}

type validateReportRequest struct {
	Data [][]interface{} `json:"data"`
}

// ValidateReport reconciles report rows posted as JSON.
func (h *SaktiHandler) ValidateReport(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req validateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.Data == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Report data is required", nil)
	}

	results, err := h.saktiService.ValidateRows(
		c.UserContext(), user,
		c.QueryInt("tahun"), c.QueryInt("satker_id"),
		service.NormalizeLedgerRows(req.Data),
	)
	if err != nil {
		return serviceError(c, err, "Failed to validate report")
	}

	return utils.SuccessResponse(c, "Report validated successfully", results)
}

// ValidateUpload reconciles an uploaded xlsx report. With ?format=xlsx the
// comparison is returned as a workbook instead of JSON.
func (h *SaktiHandler) ValidateUpload(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}
	if msg := h.checkUpload(file.Filename, file.Size); msg != "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, nil)
	}

	src, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read file", err)
	}
	defer src.Close()

	rows, err := h.excelService.ReadSheetRowsFrom(src)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse Excel file", err)
	}

	results, err := h.saktiService.ValidateRows(c.UserContext(), user, c.QueryInt("tahun"), c.QueryInt("satker_id"), rows)
	if err != nil {
		return serviceError(c, err, "Failed to validate report")
	}

	if c.Query("format") != "xlsx" {
		return utils.SuccessResponse(c, "Report validated successfully", results)
	}

	filename := fmt.Sprintf("validasi_sakti_%s.xlsx", time.Now().Format("20060102_150405"))
	outputPath := filepath.Join(h.cfg.ExportPath, fmt.Sprintf("%s_%s", uuid.New().String()[:8], filename))
	if err := h.excelService.ExportComparison(results, outputPath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export comparison", err)
	}

	return sendExport(c, outputPath, filename)
}

// ValidateAsync stores the upload and queues its reconciliation.
func (h *SaktiHandler) ValidateAsync(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File is required", err)
	}
	if msg := h.checkUpload(file.Filename, file.Size); msg != "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msg, nil)
	}

	filePath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("SAKTI-%s.xlsx", uuid.New().String()))
	if err := c.SaveFile(file, filePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save file", err)
	}

	job, err := h.saktiService.EnqueueValidation(c.UserContext(), user, c.QueryInt("tahun"), c.QueryInt("satker_id"), filePath)
	if err != nil {
		os.Remove(filePath)
		return serviceError(c, err, "Failed to queue report validation")
	}

	return c.Status(fiber.StatusAccepted).JSON(utils.Response{
		Success: true,
		Message: "Report validation queued",
		Data:    job,
	})
}

func (h *SaktiHandler) GetJob(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	job, err := h.saktiService.GetJob(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Failed to retrieve job")
	}

	return utils.SuccessResponse(c, "Job retrieved successfully", job)
}

func (h *SaktiHandler) checkUpload(filename string, size int64) string {
	if strings.ToLower(filepath.Ext(filename)) != ".xlsx" {
		return "Only Excel files (.xlsx) are allowed"
	}
	if size > int64(h.cfg.UploadMaxSize) {
		return "File size exceeds maximum limit"
	}
	return ""
}

package handler

import (
	"fmt"
	"os"

	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// sendExport streams a generated workbook as an attachment and removes it
// from the export directory.
func sendExport(c *fiber.Ctx, path, filename string) error {
	data, err := os.ReadFile(path)
	removeErr := os.Remove(path)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read export", err)
	}
	if removeErr != nil {
		utils.GetLogger().WithError(removeErr).WithField("path", path).Warn("failed to remove export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

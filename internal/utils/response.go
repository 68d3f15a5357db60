package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope of every JSON API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse writes a 200 response
func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse writes a 201 response
func CreatedResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes an error response. The underlying error is only exposed
// for server errors outside production.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}

	if err != nil {
		GetLogger().WithError(err).WithField("path", c.Path()).Debug(message)
		if statusCode < fiber.StatusInternalServerError || !isProduction() {
			resp.Error = err.Error()
		}
	}

	return c.Status(statusCode).JSON(resp)
}

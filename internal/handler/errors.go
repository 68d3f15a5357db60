package handler

import (
	"errors"
	"strconv"

	"spm-backend/internal/service"
	"spm-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors to HTTP status codes. Anything unknown is a 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSpmLocked):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSpmNotFound),
		errors.Is(err, service.ErrRincianNotFound),
		errors.Is(err, service.ErrKodeAkunNotFound),
		errors.Is(err, service.ErrFlagNotFound),
		errors.Is(err, service.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateNomorSpm),
		errors.Is(err, service.ErrDuplicateFlag):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrEmptyRincian),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidSpm),
		errors.Is(err, service.ErrInvalidFlag),
		errors.Is(err, service.ErrSatkerRequired),
		errors.Is(err, service.ErrInvalidYear),
		errors.Is(err, service.ErrInvalidReport):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrJobsDisabled):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// serviceError writes err with its mapped status. Client errors use the error
// text as the message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	status := errorStatus(err)
	if status < fiber.StatusInternalServerError || status == fiber.StatusServiceUnavailable {
		return utils.ErrorResponse(c, status, err.Error(), nil)
	}
	return utils.ErrorResponse(c, status, fallback, err)
}

func unauthenticated(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthenticated", nil)
}

func paramID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil && id > 0
}

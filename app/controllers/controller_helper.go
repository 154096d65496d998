package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
)

// engineErrorStatus maps the engine's sentinel errors to HTTP status codes.
func engineErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fiber.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		return fiber.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		return fiber.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrAlreadyPending):
		return fiber.StatusConflict, "already_pending"
	case errors.Is(err, apperrors.ErrInvalidState):
		return fiber.StatusConflict, "invalid_state"
	case errors.Is(err, apperrors.ErrValidation):
		return fiber.StatusUnprocessableEntity, "validation_failed"
	default:
		return fiber.StatusInternalServerError, "internal_server_error"
	}
}

// writeEngineError renders a sentinel error as the standard JSON error body.
func writeEngineError(c *fiber.Ctx, err error) error {
	status, code := engineErrorStatus(err)
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": err.Error(),
	})
}

// paramID parses a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validationf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

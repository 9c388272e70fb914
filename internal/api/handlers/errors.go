package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nutrition-clinic-service/internal/services"
)

// writeError maps the service error taxonomy onto HTTP statuses. The
// ReferenceError check runs before ValidationError because the former
// unwraps to the latter.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
}

func statusFromError(err error) int {
	var refErr *services.ReferenceError
	if errors.As(err, &refErr) {
		return fiber.StatusUnprocessableEntity
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return fiber.StatusConflict
	}
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}
	if errors.Is(err, services.ErrNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

package handler

import (
	"errors"
	"strconv"

	"go-supplier-orders/internal/model"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the store error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is treated as a storage failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidReference):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrMalformedInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

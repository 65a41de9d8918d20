package handler

import (
	"go-supplier-orders/internal/state"

	"github.com/gofiber/fiber/v2"
)

// StateHandler exposes the whole cache mirror in one read, matching what the
// view layer keeps on screen: both lists plus the loading flag.
type StateHandler struct {
	cache *state.Container
}

func NewStateHandler(cache *state.Container) *StateHandler {
	return &StateHandler{cache: cache}
}

func (h *StateHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"suppliers": h.cache.Suppliers(),
		"products":  h.cache.Products(),
		"loading":   h.cache.Loading(),
	})
}

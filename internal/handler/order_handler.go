package handler

import (
	"strconv"

	"go-supplier-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// GetOrderSummary annotates the supplier picker: per supplier, how many
// products are currently on order.
func (h *OrderHandler) GetOrderSummary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"counts": h.service.SupplierItemCounts()})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	supplierID, err := strconv.ParseUint(c.Params("supplierId"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	items, total := h.service.ActiveOrderItems(uint(supplierID))
	return c.JSON(fiber.Map{"data": items, "total": total})
}

// ClearOrder zeroes order quantities, scoped to ?supplier_id= when given.
func (h *OrderHandler) ClearOrder(c *fiber.Ctx) error {
	var supplierID *uint
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
		}
		v := uint(id)
		supplierID = &v
	}

	if err := h.service.ClearOrder(supplierID); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order cleared"})
}

func (h *OrderHandler) GetExchanges(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.ExchangeItems()})
}

// GetExchangeCandidates lists products not yet in the exchange set, for the
// "add to exchange" picker.
func (h *OrderHandler) GetExchangeCandidates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.NonExchangeItems()})
}

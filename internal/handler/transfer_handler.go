package handler

import (
	"go-supplier-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	service service.TransferService
}

func NewTransferHandler(s service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

func (h *TransferHandler) Export(c *fiber.Ctx) error {
	doc, err := h.service.Export()
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="supplier-orders-backup.json"`)
	return c.Send(doc)
}

// Import replaces the whole store with the posted document. Replace, not
// merge: the previous contents are gone once this succeeds.
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	if err := h.service.Import(c.Body()); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Import completed"})
}

package handler

import (
	"strings"

	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/service"
	"go-supplier-orders/internal/state"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
	cache   *state.Container
}

func NewProductHandler(s service.ProductService, cache *state.Container) *ProductHandler {
	return &ProductHandler{service: s, cache: cache}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data":    h.cache.Products(),
		"loading": h.cache.Loading(),
	})
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.AddProduct(&product); err != nil {
		if strings.HasPrefix(err.Error(), "validation failed") {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var upd model.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(id, &upd)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation failed") {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

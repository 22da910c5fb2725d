package handler

import (
	"workshop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// GET /api/product-categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err, "Internal Server Error")
	}
	return c.JSON(categories)
}

// POST /api/product-categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return respondError(c, err, "Failed to create category.")
	}

	return c.Status(201).JSON(category)
}

// PUT /api/product-categories/:id
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Category not found."})
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.UpdateCategory(id, req.Name)
	if err != nil {
		return respondError(c, err, "Failed to update category.")
	}

	return c.JSON(category)
}

// GET /api/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return respondError(c, err, "Internal Server Error")
	}
	return c.JSON(products)
}

// POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		return respondError(c, err, "Failed to create product.")
	}

	return c.Status(201).JSON(product)
}

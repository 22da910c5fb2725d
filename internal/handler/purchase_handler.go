package handler

import (
	"workshop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// GET /api/purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.ListPurchases()
	if err != nil {
		return respondError(c, err, "Internal Server Error")
	}
	return c.JSON(purchases)
}

// POST /api/purchases
func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req service.CreatePurchaseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	purchase, err := h.service.CreatePurchase(req)
	if err != nil {
		return respondError(c, err, "Failed to save purchase.")
	}

	return c.Status(201).JSON(purchase)
}

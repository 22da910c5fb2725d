package handler

import (
	"workshop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service service.ClientService
}

func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

// GET /api/clients
func (h *ClientHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.ListClients()
	if err != nil {
		return respondError(c, err, "Internal Server Error")
	}
	return c.JSON(clients)
}

// POST /api/clients
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req service.CreateClientInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	client, err := h.service.CreateClient(req)
	if err != nil {
		return respondError(c, err, "Failed to create client.")
	}

	return c.Status(201).JSON(client)
}

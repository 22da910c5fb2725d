package handler

import (
	"errors"
	"log"

	"workshop-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors to HTTP statuses. Unclassified errors are
// logged server-side and answered with a generic message.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var conflict *service.ConflictError
	var notFound *service.NotFoundError
	var invalid *service.ValidationError

	switch {
	case errors.As(err, &conflict):
		return c.Status(409).JSON(fiber.Map{"error": conflict.Message})
	case errors.As(err, &notFound):
		return c.Status(404).JSON(fiber.Map{"error": notFound.Message})
	case errors.As(err, &invalid):
		return c.Status(400).JSON(fiber.Map{"error": invalid.Message})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": fallback})
}

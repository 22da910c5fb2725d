package middleware

import (
	"strings"

	"workshop-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and stores the decoded claim in the
// request context. Verification is stateless: no session or user lookup.
func RequireAuth(tokens *jwt.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("access", claims.Access)

		return c.Next()
	}
}

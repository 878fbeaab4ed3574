package middleware

import (
	"strings"

	"github.com/yoshi1414/inventory-management-sub000/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireActor validates the bearer token minted by the authentication
// collaborator and threads the caller identity into the request context.
// Ledger rows are attributed to this identity.
func RequireActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("actor_id", claims.ActorID)
		c.Locals("actor_name", claims.Name)

		return c.Next()
	}
}

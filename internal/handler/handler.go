package handler

import (
	"log"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor identity set by the auth middleware. Empty means unattributed; the
// services then fall back to "system".
func getActorID(c *fiber.Ctx) string {
	if actorID, ok := c.Locals("actor_id").(string); ok {
		return actorID
	}
	return ""
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// respondError maps the error taxonomy onto HTTP. Unexpected failures are
// logged with their cause and surface as an opaque message.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnexpected {
		log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(kind.HTTPStatus()).JSON(fiber.Map{
			"success": false,
			"message": "internal server error",
		})
	}
	return c.Status(kind.HTTPStatus()).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

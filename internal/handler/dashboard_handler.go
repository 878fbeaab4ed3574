package handler

import (
	"github.com/yoshi1414/inventory-management-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	catalog service.CatalogService
}

func NewDashboardHandler(cat service.CatalogService) *DashboardHandler {
	return &DashboardHandler{catalog: cat}
}

// GetStats returns the stock-band alert counts. Soft-deleted products are
// never counted here.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	counts, err := h.catalog.BandCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "counts": counts})
}

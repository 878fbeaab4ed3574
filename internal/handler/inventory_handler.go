package handler

import (
	"github.com/yoshi1414/inventory-management-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	inventory service.InventoryService
	lifecycle service.LifecycleService
}

func NewInventoryHandler(inv service.InventoryService, lc service.LifecycleService) *InventoryHandler {
	return &InventoryHandler{inventory: inv, lifecycle: lc}
}

type updateStockBody struct {
	ProductID string `json:"product_id"`
	service.UpdateStockRequest
}

func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var body updateStockBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	productID, err := parseUUID(body.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	product, err := h.inventory.UpdateStock(c.Context(), productID, &body.UpdateStockRequest, getActorID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Stock updated",
		"product": product.Summary(),
	})
}

func (h *InventoryHandler) GetHistory(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	limit := c.QueryInt("limit", 0)

	product, transactions, err := h.inventory.GetHistory(c.Context(), productID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"product":      product.Summary(),
		"transactions": transactions,
		"total_count":  len(transactions),
	})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	product, err := h.lifecycle.Delete(c.Context(), productID, getActorID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted (soft delete)",
		"product": product.Summary(),
	})
}

func (h *InventoryHandler) RestoreProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	product, err := h.lifecycle.Restore(c.Context(), productID, getActorID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product restored",
		"product": product.Summary(),
	})
}

package handler

import (
	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(cat service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// SearchProducts handles the faceted product listing. Query params:
// keyword, category, status, stockFilter (all|out|low|sufficient), sort,
// page (zero-based, clamped to 0), includeDeleted.
func (h *CatalogHandler) SearchProducts(c *fiber.Ctx) error {
	band, err := model.ParseStockBand(c.Query("stockFilter"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}

	crit := model.SearchCriteria{
		Keyword:        c.Query("keyword"),
		Category:       c.Query("category"),
		Status:         c.Query("status"),
		Band:           band,
		Sort:           model.SortKey(c.Query("sort")),
		Page:           page,
		IncludeDeleted: c.QueryBool("includeDeleted", false),
	}

	result, err := h.catalog.Search(c.Context(), crit)
	if err != nil {
		return respondError(c, err)
	}

	counts, err := h.catalog.BandCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"page":    result,
		"counts":  counts,
	})
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid JSON"})
	}

	product, err := h.catalog.CreateProduct(c.Context(), &req, getActorID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Product registered",
		"data":    product,
	})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid product ID"})
	}

	product, err := h.catalog.GetProduct(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// GetProductByCode resolves a product by its 8-character code, the
// identifier printed on labels and barcode scans.
func (h *CatalogHandler) GetProductByCode(c *fiber.Ctx) error {
	product, err := h.catalog.GetProductByCode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "categories": categories})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"
	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/repository"
	"github.com/yoshi1414/inventory-management-sub000/internal/ws"
	"github.com/yoshi1414/inventory-management-sub000/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const productCodeAttempts = 10

// CreateProductRequest is the registration form. Everything past status is
// an optional descriptive attribute passed through to the product record.
type CreateProductRequest struct {
	ProductName string  `json:"product_name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive"`

	SKU               string   `json:"sku" validate:"omitempty,max=50"`
	Description       string   `json:"description"`
	Rating            *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	WarrantyMonths    *int     `json:"warranty_months" validate:"omitempty,gte=0"`
	Dimensions        string   `json:"dimensions" validate:"omitempty,max=100"`
	Variations        string   `json:"variations" validate:"omitempty,max=200"`
	ManufacturingDate string   `json:"manufacturing_date" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate    string   `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Tags              string   `json:"tags" validate:"omitempty,max=200"`
}

// CatalogService covers product registration, lookups and the faceted
// search plus band aggregates the dashboards consume.
type CatalogService interface {
	CreateProduct(ctx context.Context, req *CreateProductRequest, actorID string) (*model.Product, error)
	// Lookups see soft-deleted products; admin surfaces need them.
	GetProduct(ctx context.Context, productID uuid.UUID) (*model.Product, error)
	GetProductByCode(ctx context.Context, code string) (*model.Product, error)
	Search(ctx context.Context, crit model.SearchCriteria) (*model.ProductPage, error)
	BandCounts(ctx context.Context) (*model.StockBandCounts, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	hub         *ws.Hub
	pageSize    int
}

func NewCatalogService(pRepo repository.ProductRepository, hub *ws.Hub, pageSize int) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		hub:         hub,
		pageSize:    pageSize,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *CreateProductRequest, actorID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("invalid product: %s", validator.FirstError(errs))
	}

	code, err := s.generateProductCode(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := &model.Product{
		ProductCode: code,
		ProductName: strings.TrimSpace(req.ProductName),
		Category:    req.Category,
		Status:      status,
		Price:       req.Price,
		Stock:       stock,
		Details: model.ProductDetails{
			SKU:               blankToNil(req.SKU),
			Description:       blankToNil(req.Description),
			Rating:            req.Rating,
			WarrantyMonths:    req.WarrantyMonths,
			Dimensions:        blankToNil(req.Dimensions),
			Variations:        blankToNil(req.Variations),
			ManufacturingDate: parseDate(req.ManufacturingDate),
			ExpirationDate:    parseDate(req.ExpirationDate),
			Tags:              blankToNil(req.Tags),
		},
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperr.Unexpected(err, "failed to register product")
	}

	s.hub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_created",
		Actor:   actorID,
		Message: fmt.Sprintf("product '%s' registered with stock %d", product.ProductName, product.Stock),
		Payload: product.Summary(),
	})

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID, true)
	if err != nil {
		return nil, mapStorageError(err, fmt.Sprintf("product not found: %s", productID))
	}
	return product, nil
}

func (s *catalogService) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.FindByProductCode(ctx, code)
	if err != nil {
		return nil, mapStorageError(err, fmt.Sprintf("product not found: %s", code))
	}
	return product, nil
}

func (s *catalogService) Search(ctx context.Context, crit model.SearchCriteria) (*model.ProductPage, error) {
	crit.PageSize = s.pageSize
	page, err := s.productRepo.Search(ctx, crit)
	if err != nil {
		return nil, apperr.Unexpected(err, "product search failed")
	}
	return page, nil
}

func (s *catalogService) BandCounts(ctx context.Context) (*model.StockBandCounts, error) {
	counts, err := s.productRepo.BandCounts(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err, "failed to count stock bands")
	}
	return counts, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, apperr.Unexpected(err, "failed to list categories")
	}
	return categories, nil
}

// generateProductCode draws 8-character uppercase codes until one is free.
func (s *catalogService) generateProductCode(ctx context.Context) (string, error) {
	for i := 0; i < productCodeAttempts; i++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
		_, err := s.productRepo.FindByProductCode(ctx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", apperr.Unexpected(err, "failed to generate product code")
		}
	}
	return "", apperr.Unexpected(nil, "failed to generate a unique product code")
}

func blankToNil(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	// Format already checked by the datetime validation tag.
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

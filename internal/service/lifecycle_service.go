package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"
	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/repository"
	"github.com/yoshi1414/inventory-management-sub000/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifecycleService guards the soft-delete transitions on a product. These
// transitions leave no ledger rows; the stock ledger only records stock
// mutations.
type LifecycleService interface {
	Delete(ctx context.Context, productID uuid.UUID, actorID string) (*model.Product, error)
	Restore(ctx context.Context, productID uuid.UUID, actorID string) (*model.Product, error)
}

type lifecycleService struct {
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewLifecycleService(pRepo repository.ProductRepository, hub *ws.Hub) LifecycleService {
	return &lifecycleService{productRepo: pRepo, hub: hub}
}

func (s *lifecycleService) Delete(ctx context.Context, productID uuid.UUID, actorID string) (*model.Product, error) {
	product, err := s.productRepo.MutateProduct(ctx, productID, func(tx repository.MutationTx, p *model.Product) error {
		switch p.Lifecycle() {
		case model.LifecycleDeleted:
			return apperr.Conflict("product already deleted")
		case model.LifecycleActive:
			now := time.Now()
			p.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}
			p.UpdatedAt = now
			return tx.SaveProduct(p)
		}
		return nil
	})
	if err != nil {
		return nil, mapStorageError(err, fmt.Sprintf("product not found: %s", productID))
	}

	s.hub.Publish(ws.Event{
		Type:    "product_lifecycle",
		Action:  "product_deleted",
		Actor:   actorID,
		Message: fmt.Sprintf("product '%s' was deleted", product.ProductName),
		Payload: product.Summary(),
	})

	return product, nil
}

func (s *lifecycleService) Restore(ctx context.Context, productID uuid.UUID, actorID string) (*model.Product, error) {
	product, err := s.productRepo.MutateProduct(ctx, productID, func(tx repository.MutationTx, p *model.Product) error {
		switch p.Lifecycle() {
		case model.LifecycleActive:
			return apperr.Conflict("product is not deleted")
		case model.LifecycleDeleted:
			p.DeletedAt = gorm.DeletedAt{}
			p.UpdatedAt = time.Now()
			return tx.SaveProduct(p)
		}
		return nil
	})
	if err != nil {
		return nil, mapStorageError(err, fmt.Sprintf("product not found: %s", productID))
	}

	s.hub.Publish(ws.Event{
		Type:    "product_lifecycle",
		Action:  "product_restored",
		Actor:   actorID,
		Message: fmt.Sprintf("product '%s' was restored", product.ProductName),
		Payload: product.Summary(),
	})

	return product, nil
}

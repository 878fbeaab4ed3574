package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"
	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/repository"
	"github.com/yoshi1414/inventory-management-sub000/internal/ws"
	"github.com/yoshi1414/inventory-management-sub000/pkg/validator"

	"github.com/google/uuid"
)

// systemActor is attributed to mutations with no authenticated caller.
const systemActor = "system"

// UpdateStockRequest is one stock mutation as supplied by the caller.
// Quantity is a pointer so a missing value is distinguishable from zero.
type UpdateStockRequest struct {
	Kind     model.MutationKind `json:"transaction_type" validate:"required,oneof=in out set"`
	Quantity *int               `json:"quantity" validate:"required,gte=0"`
	Remarks  string             `json:"remarks" validate:"max=255"`
}

type InventoryService interface {
	// UpdateStock applies one stock mutation and appends the matching
	// ledger row, atomically. It operates on soft-deleted products too.
	// Deliberately not idempotent: identical calls stack.
	UpdateStock(ctx context.Context, productID uuid.UUID, req *UpdateStockRequest, actorID string) (*model.Product, error)
	// GetHistory returns the product (soft-deleted included) and its
	// ledger rows newest first, capped to limit when limit > 0.
	GetHistory(ctx context.Context, productID uuid.UUID, limit int) (*model.Product, []model.StockTransaction, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.StockTransactionRepository
	hub         *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, tRepo repository.StockTransactionRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		ledgerRepo:  tRepo,
		hub:         hub,
	}
}

func (s *inventoryService) UpdateStock(ctx context.Context, productID uuid.UUID, req *UpdateStockRequest, actorID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("invalid stock update: %s", validator.FirstError(errs))
	}
	quantity := *req.Quantity

	actor := actorID
	if actor == "" {
		actor = systemActor
	}

	product, err := s.productRepo.MutateProduct(ctx, productID, func(tx repository.MutationTx, p *model.Product) error {
		beforeStock := p.Stock
		var afterStock int

		switch req.Kind {
		case model.MutationIn:
			afterStock = beforeStock + quantity
		case model.MutationOut:
			if beforeStock < quantity {
				return apperr.Conflict("insufficient stock (current: %d)", beforeStock)
			}
			afterStock = beforeStock - quantity
		case model.MutationSet:
			afterStock = quantity
		default:
			return apperr.Validation("unknown transaction type %q", req.Kind)
		}

		now := time.Now()
		p.Stock = afterStock
		p.UpdatedAt = now
		if err := tx.SaveProduct(p); err != nil {
			return err
		}

		// The ledger row stores the caller-supplied quantity verbatim:
		// for "set" that is the absolute target, not the delta.
		return tx.AppendTransaction(&model.StockTransaction{
			ProductID:       p.ID,
			TransactionType: ledgerType(req.Kind, beforeStock, afterStock),
			Quantity:        quantity,
			BeforeStock:     beforeStock,
			AfterStock:      afterStock,
			ActorID:         actor,
			TransactionDate: now,
			Remarks:         req.Remarks,
		})
	})
	if err != nil {
		return nil, mapStorageError(err, fmt.Sprintf("product not found: %s", productID))
	}

	s.hub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "stock_mutated",
		Actor:   actor,
		Message: fmt.Sprintf("stock of '%s' is now %d", product.ProductName, product.Stock),
		Payload: product.Summary(),
	})

	return product, nil
}

func (s *inventoryService) GetHistory(ctx context.Context, productID uuid.UUID, limit int) (*model.Product, []model.StockTransaction, error) {
	product, err := s.productRepo.FindByID(ctx, productID, true)
	if err != nil {
		return nil, nil, mapStorageError(err, fmt.Sprintf("product not found: %s", productID))
	}

	transactions, err := s.ledgerRepo.FindByProductID(ctx, productID, limit)
	if err != nil {
		return nil, nil, apperr.Unexpected(err, "failed to load stock history")
	}

	return product, transactions, nil
}

// ledgerType derives the direction recorded on the ledger. For "set" the
// direction follows the way the stock moved; a set that changes nothing is
// still recorded, as "in" by convention.
func ledgerType(kind model.MutationKind, beforeStock, afterStock int) model.TransactionType {
	switch kind {
	case model.MutationOut:
		return model.TxOut
	case model.MutationIn:
		return model.TxIn
	default:
		if afterStock < beforeStock {
			return model.TxOut
		}
		return model.TxIn
	}
}

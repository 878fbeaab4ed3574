package repository

import (
	"context"

	"github.com/yoshi1414/inventory-management-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockTransactionRepository reads the ledger. Appends only ever happen
// through MutationTx inside a locked product mutation; there is no update
// or delete path at all.
type StockTransactionRepository interface {
	// FindByProductID returns ledger rows newest first. limit <= 0 means
	// all rows.
	FindByProductID(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockTransaction, error)
}

type stockTransactionRepo struct {
	db *gorm.DB
}

func NewStockTransactionRepo(db *gorm.DB) StockTransactionRepository {
	return &stockTransactionRepo{db}
}

func (r *stockTransactionRepo) FindByProductID(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockTransaction, error) {
	q := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("transaction_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var transactions []model.StockTransaction
	err := q.Find(&transactions).Error
	return transactions, err
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType is the direction recorded on a ledger row.
type TransactionType string

const (
	TxIn  TransactionType = "in"
	TxOut TransactionType = "out"
)

// MutationKind is the operation requested by the caller. "set" writes an
// absolute stock count and is recorded on the ledger as in or out depending
// on which way the stock moved.
type MutationKind string

const (
	MutationIn  MutationKind = "in"
	MutationOut MutationKind = "out"
	MutationSet MutationKind = "set"
)

// StockTransaction is one immutable ledger row: a before/after snapshot of a
// single stock mutation. Rows are append-only; application code never
// updates or deletes them, and ProductID is a weak reference that outlives
// the product's soft deletion.
type StockTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	TransactionType TransactionType `gorm:"type:varchar(10);not null" json:"transaction_type"`
	// Quantity is the caller-supplied value. For in/out it is the delta;
	// for a "set" mutation it is the absolute target, not the difference
	// between BeforeStock and AfterStock.
	Quantity        int       `gorm:"not null" json:"quantity"`
	BeforeStock     int       `gorm:"not null" json:"before_stock"`
	AfterStock      int       `gorm:"not null" json:"after_stock"`
	ActorID         string    `gorm:"type:varchar(50);not null" json:"actor_id"`
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`
	Remarks         string    `gorm:"type:varchar(255)" json:"remarks"`
	CreatedAt       time.Time `json:"created_at"`
}

func (t *StockTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

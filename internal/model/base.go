package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles the UUID primary key, timestamps and the soft-delete
// marker. DeletedAt doubles as the lifecycle state: invalid = active,
// valid = logically deleted (the row stays readable through Unscoped).
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Hook Before Create to generate the UUID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// LifecycleState is the two-variant soft-delete state of a row.
type LifecycleState int

const (
	LifecycleActive LifecycleState = iota
	LifecycleDeleted
)

// Lifecycle returns the soft-delete state as an explicit variant so callers
// can switch over it exhaustively instead of null-checking DeletedAt.
func (base *BaseModel) Lifecycle() LifecycleState {
	if base.DeletedAt.Valid {
		return LifecycleDeleted
	}
	return LifecycleActive
}

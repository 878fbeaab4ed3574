package service

import (
	"context"
	"testing"
	"time"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"
	"github.com/yoshi1414/inventory-management-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteProduct(t *testing.T) {
	p := seedProduct(5)
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	deleted, err := svc.Delete(context.Background(), p.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleDeleted, deleted.Lifecycle())
	assert.False(t, deleted.DeletedAt.Time.IsZero())

	// Ordinary lookups no longer see it; privileged ones do.
	_, err = store.FindByID(context.Background(), p.ID, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = store.FindByID(context.Background(), p.ID, true)
	assert.NoError(t, err)
}

func TestDeleteAlreadyDeleted(t *testing.T) {
	p := seedProduct(5)
	deletedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p.DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	_, err := svc.Delete(context.Background(), p.ID, "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The original deletion timestamp is untouched.
	current, ferr := store.FindByID(context.Background(), p.ID, true)
	require.NoError(t, ferr)
	assert.Equal(t, deletedAt, current.DeletedAt.Time)
}

func TestRestoreProduct(t *testing.T) {
	p := seedProduct(5)
	p.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	restored, err := svc.Restore(context.Background(), p.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleActive, restored.Lifecycle())

	current, ferr := store.FindByID(context.Background(), p.ID, false)
	require.NoError(t, ferr)
	assert.False(t, current.DeletedAt.Valid)
}

func TestRestoreNotDeleted(t *testing.T) {
	p := seedProduct(5)
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	_, err := svc.Restore(context.Background(), p.ID, "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestDeleteRestoreRoundTrip(t *testing.T) {
	p := seedProduct(5)
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	_, err := svc.Delete(context.Background(), p.ID, "alice")
	require.NoError(t, err)
	restored, err := svc.Restore(context.Background(), p.ID, "alice")
	require.NoError(t, err)

	assert.Equal(t, model.LifecycleActive, restored.Lifecycle())
	assert.Equal(t, 5, restored.Stock)
}

func TestLifecycleNotFound(t *testing.T) {
	store := newMemoryStore()
	svc := NewLifecycleService(store, nil)

	_, err := svc.Delete(context.Background(), uuid.New(), "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	_, err = svc.Restore(context.Background(), uuid.New(), "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestLifecycleLeavesNoLedgerRows(t *testing.T) {
	p := seedProduct(5)
	store := newMemoryStore(p)
	svc := NewLifecycleService(store, nil)

	_, err := svc.Delete(context.Background(), p.ID, "alice")
	require.NoError(t, err)
	_, err = svc.Restore(context.Background(), p.ID, "alice")
	require.NoError(t, err)

	assert.Empty(t, store.ledgerFor(p.ID))
}

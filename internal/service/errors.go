package service

import (
	"errors"

	"github.com/yoshi1414/inventory-management-sub000/internal/apperr"

	"gorm.io/gorm"
)

// mapStorageError folds a repository error into the taxonomy: missing rows
// become NotFound, taxonomy errors pass through untouched, anything else is
// an unexpected storage failure.
func mapStorageError(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s", notFoundMsg)
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.Unexpected(err, "storage operation failed")
}

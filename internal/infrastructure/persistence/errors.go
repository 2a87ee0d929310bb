package persistence

import (
	"errors"
	"strings"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// notFound maps gorm's missing-row error onto the domain sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// isDuplicateKey reports a unique constraint violation. Drivers without an
// error translator fall back to message matching.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

package services

import (
	"errors"

	"blogapi/models"

	"gorm.io/gorm"
)

// lookupError turns a missing row into a NotFound AppError and passes
// anything else through.
func lookupError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(message)
	}
	return err
}

// writeError maps constraint violations raised by the store, e.g. a unique
// index hit by a concurrent insert, onto API errors.
func writeError(err error, conflictMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &models.AppError{Kind: models.KindConflict, Message: conflictMessage, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &models.AppError{Kind: models.KindNotFound, Message: "Referenced record not found", Err: err}
	default:
		return err
	}
}

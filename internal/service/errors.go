package service

import (
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
	appErrors "github.com/noah-isme/soutien-scolaire-api/pkg/errors"
)

const msgMissingFields = "Tous les champs requis doivent être fournis"

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msgMissingFields)
}

func invalid(message string) error {
	return appErrors.Clone(appErrors.ErrValidation, message)
}

func notFound(message string) error {
	return appErrors.Clone(appErrors.ErrNotFound, message)
}

// storageFailure logs a backing store error and surfaces its message.
func storageFailure(logger *zap.Logger, op string, err error) error {
	logger.Error(op, zap.Error(err))
	return appErrors.Storage(err)
}

// lookupError maps a single-record read failure.
func lookupError(logger *zap.Logger, op, missing string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(missing)
	}
	return storageFailure(logger, op, err)
}

// writeError maps a create or update failure. Unknown references are a
// client error.
func writeError(logger *zap.Logger, op, missing, badReference string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound(missing)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, badReference)
	default:
		return storageFailure(logger, op, err)
	}
}

// deleteError maps a delete failure. Records still in use answer 409.
func deleteError(logger *zap.Logger, op, missing, inUse string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound(missing)
	case errors.Is(err, repository.ErrReferenced):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, inUse)
	default:
		return storageFailure(logger, op, err)
	}
}

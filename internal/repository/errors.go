package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors shared by every backing store. Services match them with
// errors.Is; sql.ErrNoRows signals a missing record.
var (
	ErrDuplicate        = errors.New("duplicate record")
	ErrReferenced       = errors.New("record is still referenced")
	ErrInvalidReference = errors.New("reference to unknown record")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// writeError classifies failures of INSERT and UPDATE statements.
func writeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrDuplicate, pqErr.Message)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrInvalidReference, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// deleteError classifies failures of DELETE statements.
func deleteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return fmt.Errorf("%s: %w: %s", op, ErrReferenced, pqErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

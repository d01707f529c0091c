package errors

import (
	"database/sql"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrNotFound, "course not found")
	assert.Equal(t, "course not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.False(t, stderrors.Is(err, ErrValidation))
}

func TestStoragePassesMessageThrough(t *testing.T) {
	err := Storage(sql.ErrConnDone)
	assert.Equal(t, sql.ErrConnDone.Error(), err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, stderrors.Is(err, sql.ErrConnDone))
	assert.Nil(t, Storage(nil))
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	err := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrConflict, "room still scheduled")
	assert.Same(t, typed, FromError(typed))
}

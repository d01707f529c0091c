package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure type every service returns. It serialises to the
// {"error","code"} body the dashboard reads.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

var (
	ErrValidation      = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrNotFound        = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrAlreadyEnrolled = New("ALREADY_ENROLLED", http.StatusBadRequest, "student already enrolled in this session")
	ErrConflict        = New("CONFLICT", http.StatusConflict, "conflict")
	ErrStorage         = New("STORAGE_ERROR", http.StatusInternalServerError, "storage failure")
	ErrInternal        = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	// ErrCacheMiss never reaches a response; the cache layer swallows it.
	ErrCacheMiss = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap keeps cause reachable through errors.Is/As.
func Wrap(cause error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: cause}
}

// Clone copies err, replacing the message when one is given.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	out := *err
	if message != "" {
		out.Message = message
	}
	return &out
}

// Storage reports a backing store failure with the engine's own message.
func Storage(cause error) *Error {
	if cause == nil {
		return nil
	}
	return Wrap(cause, ErrStorage.Code, ErrStorage.Status, cause.Error())
}

// FromError finds the *Error in err's chain; anything else becomes a 500.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is compares codes, so a clone with a custom message still matches its
// predefined value.
func (e *Error) Is(target error) bool {
	var other *Error
	if e == nil || !errors.As(target, &other) || other == nil {
		return false
	}
	return e.Code == other.Code
}

package domain

import (
	"errors"
	"strings"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrConflict           = errors.New("this record has already been updated")
	ErrCategoryInUse      = errors.New("category is referenced by products")
)

// ValidationError carries one message per violated field constraint.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// StorageError wraps a persistence failure behind a generic, client-safe
// message. The underlying cause is logged server-side and never leaked.
type StorageError struct {
	Message string
	Err     error
}

func NewStorageError(message string, err error) *StorageError {
	return &StorageError{Message: message, Err: err}
}

func (e *StorageError) Error() string { return e.Message }

func (e *StorageError) Unwrap() error { return e.Err }

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DecodeError represents a request body that could not be decoded into a
// field mapping.
type DecodeError struct {
	Message string
	Err     error
}

// NewDecodeError creates a new decode error
func NewDecodeError(message string, err error) *DecodeError {
	return &DecodeError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid or missing user data"
}

// Unwrap returns the wrapped error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *DecodeError) HTTPStatus() int {
	return http.StatusBadRequest
}

// SchemaMismatchError represents a decoded field mapping containing keys the
// entity model does not recognize.
type SchemaMismatchError struct {
	Field string
}

// NewSchemaMismatchError creates a new schema mismatch error
func NewSchemaMismatchError(field string) *SchemaMismatchError {
	return &SchemaMismatchError{Field: field}
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("'%s' is an invalid keyword argument for User", e.Field)
}

// HTTPStatus returns the HTTP status for this error
func (e *SchemaMismatchError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a lookup on an id with no corresponding record.
type NotFoundError struct {
	Resource string
	ID       int64
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Couldn't find %s with id, %d", e.Resource, e.ID)
}

// HTTPStatus returns the HTTP status for this error.
// Not-found is reported as 400 rather than 404, matching the contract callers
// already depend on.
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusBadRequest
}

// StoreError represents a failure raised by the persistence layer
// (connectivity, constraint violation, etc.).
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError creates a new store error
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{
		Op:  op,
		Err: err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s", e.Op)
}

// Unwrap returns the wrapped error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *StoreError) HTTPStatus() int {
	return http.StatusBadRequest
}

// HTTPStatuser interface for errors that carry an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}

// HTTPStatus resolves the status code for any error. Errors outside the
// taxonomy collapse to 400, the blanket policy of this service.
func HTTPStatus(err error) int {
	var st HTTPStatuser
	if errors.As(err, &st) {
		return st.HTTPStatus()
	}
	return http.StatusBadRequest
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Package apperrors defines the error taxonomy shared by the record store
// and its HTTP handlers. Every failure a caller can observe is one of five
// kinds, so the presentation layer can distinguish "sign in again" from
// "retry the upload" from "do not retry, a blob may be orphaned".
package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when no authenticated user is present.
// Never retried automatically; surfaced as "please sign in".
var ErrUnauthenticated = errors.New("authentication required")

// ValidationError rejects malformed or missing input before any write
// happens. Field names the offending input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a named field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps a blob-store failure. Safe to retry the whole upload:
// nothing was persisted.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("blob storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError wraps a metadata-store failure on a standalone write or
// read. Safe to retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("metadata %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PartialFailureError means the metadata write failed after the blob write
// succeeded: a blob now exists with no owner-visible record. Re-running the
// upload would orphan a second blob, so this is deliberately distinct from
// StorageError. BlobKey identifies the orphan for later reconciliation.
type PartialFailureError struct {
	BlobKey string
	Err     error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("report metadata write failed after blob %s was stored: %v", e.BlobKey, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// Code returns a stable machine-readable code for the error kind, used in
// API responses and logs.
func Code(err error) string {
	var (
		ve *ValidationError
		se *StorageError
		pe *PersistenceError
		pf *PartialFailureError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return "auth_required"
	case errors.As(err, &ve):
		return "validation_failed"
	case errors.As(err, &pf): // checked before StorageError/PersistenceError: it wraps a PersistenceError
		return "partial_failure"
	case errors.As(err, &se):
		return "storage_failed"
	case errors.As(err, &pe):
		return "persistence_failed"
	default:
		return "internal"
	}
}

// HTTPStatus maps an error kind to the status its handler should write.
func HTTPStatus(err error) int {
	switch Code(err) {
	case "auth_required":
		return 401
	case "validation_failed":
		return 400
	case "storage_failed":
		return 502
	case "partial_failure", "persistence_failed":
		return 500
	default:
		return 500
	}
}

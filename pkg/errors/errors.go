package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the orchestration boundary.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindPersistence Kind = "PERSISTENCE"
	KindRender      Kind = "RENDER"
	KindAsset       Kind = "ASSET"
	KindNotFound    Kind = "NOT_FOUND"
	KindInternal    Kind = "INTERNAL"
)

// Error represents a typed domain error. Details carries the individual
// unmet rules for validation failures.
type Error struct {
	Kind    Kind     `json:"kind"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrValidation  = New(KindValidation, "VALIDATION_ERROR", "validation failed")
	ErrPersistence = New(KindPersistence, "PERSISTENCE_ERROR", "store operation failed")
	ErrRender      = New(KindRender, "RENDER_ERROR", "report rendering failed")
	ErrAsset       = New(KindAsset, "ASSET_ERROR", "referenced asset unavailable")
	ErrNotFound    = New(KindNotFound, "NOT_FOUND", "record not found")
	ErrInternal    = New(KindInternal, "INTERNAL_ERROR", "internal error")
)

// Validation builds a VALIDATION error from the unmet rules.
func Validation(details []string) *Error {
	e := Clone(ErrValidation, "")
	e.Details = append([]string(nil), details...)
	return e
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Kind, ErrInternal.Code, ErrInternal.Message)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
	ErrTransport    = errors.New("transport failure")
)

// MsgRequired is the field message used for missing mandatory values.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Kind classifies an error into the failure taxonomy surfaced to users.
type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindTransport  Kind = "transport"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindCanceled   Kind = "canceled"
	KindUnknown    Kind = "unknown"
)

// KindOf maps err onto the taxonomy. Forbidden responses are reported as
// auth failures since both mean the session cannot perform the call.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return KindAuth
	case errors.Is(err, ErrTransport), errors.Is(err, ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindUnknown
	}
}

// UserMessage returns a short message for err and whether offering a retry
// makes sense.
func UserMessage(err error) (msg string, retryable bool) {
	switch KindOf(err) {
	case KindNone:
		return "", false
	case KindValidation:
		var verr *ValidationError
		if errors.As(err, &verr) {
			return verr.Error(), false
		}
		return err.Error(), false
	case KindAuth:
		return "Your session has expired. Please log in again.", false
	case KindTransport:
		return "Could not reach the todo service. Please try again.", true
	case KindNotFound:
		return "That todo no longer exists.", false
	case KindConflict:
		return "The todo was changed elsewhere. Refresh and try again.", true
	case KindCanceled:
		return "Canceled.", false
	default:
		return "Something went wrong. Please try again.", true
	}
}

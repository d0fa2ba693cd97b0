package matchstats

import (
	"context"
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable marks failures reading the match store.
	ErrStoreUnavailable = crerr.New("match store unavailable")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a store failure with the operation name and marks it
// ErrStoreUnavailable. A cancelled or expired caller context is wrapped but
// left unmarked: the store did not fail.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsContextError(err) {
		return crerr.Wrap(err, op)
	}
	return crerr.Mark(crerr.Wrap(err, op), ErrStoreUnavailable)
}

// IsContextError reports a caller-side cancellation or deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func IsStoreUnavailable(err error) bool {
	return crerr.Is(err, ErrStoreUnavailable)
}

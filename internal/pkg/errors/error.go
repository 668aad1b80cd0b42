// internal/pkg/errors/error.go
package xerrors

import (
	"errors"
	"fmt"
)

// Error kinds recognized by the HTTP boundary. Expected business outcomes
// are returned as values wrapping one of these sentinels, never panicked.
var (
	ErrDomain         = errors.New("domain rule violated")
	ErrConflict       = errors.New("operation not valid in current state")
	ErrNotFound       = errors.New("resource not found")
	ErrInfrastructure = errors.New("infrastructure failure")
)

type kindError struct {
	msg   string
	kind  error
	cause error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// Domainf reports an invariant or business-rule violation.
func Domainf(format string, args ...any) error {
	return &kindError{msg: fmt.Sprintf(format, args...), kind: ErrDomain}
}

// Conflictf reports a state conflict (duplicate plate, double rental).
func Conflictf(format string, args ...any) error {
	return &kindError{msg: fmt.Sprintf(format, args...), kind: ErrConflict}
}

// NotFoundf reports an absent entity or failed state precondition.
func NotFoundf(format string, args ...any) error {
	return &kindError{msg: fmt.Sprintf(format, args...), kind: ErrNotFound}
}

// Infra wraps a storage-driver fault with an operation-specific message.
// The cause stays reachable through errors.Is / errors.As.
func Infra(err error, message string) error {
	if err == nil {
		return nil
	}
	return &kindError{
		msg:   fmt.Sprintf("%s: %v", message, err),
		kind:  ErrInfrastructure,
		cause: err,
	}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}

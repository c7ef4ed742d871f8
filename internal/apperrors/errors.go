package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an unexpected failure inside the service or an adapter.
var ErrInternal = errors.New("internal error")

// Creation rejections. Identities and balance snapshots are always assigned by
// the system, never by the caller.
var (
	ErrEntityIDProvided       = fmt.Errorf("entity id must not be provided on create: %w", ErrValidation)
	ErrOpeningBalanceProvided = fmt.Errorf("opening balance must not be provided on create: %w", ErrValidation)
	ErrClosingBalanceProvided = fmt.Errorf("closing balance must not be provided on create: %w", ErrValidation)
)

// ErrEntityIDNotFound is returned by balance mutations and conditional updates
// when the targeted record does not exist (or vanished between load and update).
var ErrEntityIDNotFound = fmt.Errorf("entity id not found: %w", ErrNotFound)

// NotFoundError is a lookup miss that carries the identity that was asked for.
type NotFoundError struct {
	EntityID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found", e.EntityID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InvalidAccountRefError is returned by transaction creation when the
// transaction's account cannot be resolved or its balance mutation fails.
// AccountID is empty when the reference itself was unresolvable. Cause keeps
// the underlying failure inspectable through errors.Is / errors.As.
type InvalidAccountRefError struct {
	AccountID string
	Cause     error
}

func (e *InvalidAccountRefError) Error() string {
	if e.AccountID == "" {
		return "invalid account reference: no account id"
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid account reference %q: %v", e.AccountID, e.Cause)
	}
	return fmt.Sprintf("invalid account reference %q", e.AccountID)
}

func (e *InvalidAccountRefError) Unwrap() error {
	return e.Cause
}

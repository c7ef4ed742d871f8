package repositories

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAllAccounts retrieves every persisted account.
	FindAllAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByID retrieves an account by identity. A miss is reported
	// as apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, id domain.EntityID) (*domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// CreateAccount persists a new account and returns the identity the
	// repository assigned to it.
	CreateAccount(ctx context.Context, account domain.Account) (domain.EntityID, error)

	// FindAccountByIDAndUpdate replaces the stored account in a single
	// conditional step. It fails with apperrors.ErrEntityIDNotFound when no
	// record exists under id, which detects a record that vanished between
	// a caller's load and its update.
	FindAccountByIDAndUpdate(ctx context.Context, id domain.EntityID, account domain.Account) (domain.EntityID, error)
}

// AccountRepository combines all account persistence operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}

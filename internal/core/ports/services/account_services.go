package services

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// ListAccounts retrieves every account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountByID retrieves an account, returning nil without error when
	// no account exists under id.
	GetAccountByID(ctx context.Context, id domain.EntityID) (*domain.Account, error)

	// GetAccountByIDOrFail retrieves an account, failing with a
	// apperrors.NotFoundError carrying id when it does not exist.
	GetAccountByIDOrFail(ctx context.Context, id domain.EntityID) (*domain.Account, error)
}

// AccountWriterSvc defines creation of accounts.
type AccountWriterSvc interface {
	// CreateAccount persists a new account and returns its assigned identity.
	// Fails with apperrors.ErrEntityIDProvided when the input already carries one.
	CreateAccount(ctx context.Context, account domain.Account) (domain.EntityID, error)
}

// AccountMutatorSvc is the only writer of account balances.
type AccountMutatorSvc interface {
	// Withdraw decreases the account balance by amount and persists the
	// result, returning the updated account. Fails with
	// apperrors.ErrEntityIDNotFound when the account is missing and with
	// domain.ErrInsufficientFunds when the balance cannot cover amount.
	Withdraw(ctx context.Context, id domain.EntityID, amount domain.Amount) (*domain.Account, error)

	// Deposit increases the account balance by amount and persists the
	// result, returning the updated account.
	Deposit(ctx context.Context, id domain.EntityID, amount domain.Amount) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountMutatorSvc
}

package services

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// ListTransactions retrieves every persisted transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransactionByID retrieves a transaction, returning nil without
	// error when no transaction exists under id.
	GetTransactionByID(ctx context.Context, id domain.EntityID) (*domain.Transaction, error)

	// GetTransactionByIDOrFail retrieves a transaction, failing with a
	// apperrors.NotFoundError carrying id when it does not exist.
	GetTransactionByIDOrFail(ctx context.Context, id domain.EntityID) (*domain.Transaction, error)
}

// TransactionWriterSvc orchestrates transaction creation.
type TransactionWriterSvc interface {
	// CreateTransaction validates the posting, resolves its account, applies
	// the balance mutation, stamps opening/closing balances and persists the
	// transaction with the mutated account atomically. Returns the assigned
	// transaction identity.
	CreateTransaction(ctx context.Context, transaction domain.Transaction) (domain.EntityID, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

package repositories

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindAllTransactions retrieves every persisted transaction.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a transaction by identity. A miss is
	// reported as apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, id domain.EntityID) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// CreateTransaction persists the transaction together with the mutated
	// account it was posted against, as one atomic unit of work: either both
	// records are written or neither is. The account must already carry its
	// post-mutation balance. Returns the identity assigned to the transaction.
	CreateTransaction(ctx context.Context, transaction domain.Transaction, account domain.Account) (domain.EntityID, error)
}

// TransactionRepository combines all transaction persistence operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}

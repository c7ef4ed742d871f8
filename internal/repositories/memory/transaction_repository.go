package memory

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
)

type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates an in-memory transaction repository on the
// store. It must share the store with the account repository so transaction
// posting can update both record sets under one lock.
func NewTransactionRepository(store *Store) portsrepo.TransactionRepository {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepository = (*transactionRepository)(nil)

func (r *transactionRepository) FindAllTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transactions := make([]domain.Transaction, len(r.store.transactions))
	copy(transactions, r.store.transactions)
	return transactions, nil
}

func (r *transactionRepository) FindTransactionByID(_ context.Context, id domain.EntityID) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index, ok := decodeID(id, len(r.store.transactions))
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	transaction := r.store.transactions[index]
	return &transaction, nil
}

// CreateTransaction writes the mutated account and the transaction record
// under one lock hold. The account is verified before anything is touched,
// so a failure leaves no partial write.
func (r *transactionRepository) CreateTransaction(_ context.Context, transaction domain.Transaction, account domain.Account) (domain.EntityID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	accountIndex, ok := decodeID(account.ID, len(r.store.accounts))
	if !ok {
		return "", apperrors.ErrEntityIDNotFound
	}

	r.store.accounts[accountIndex] = account

	id := encodeID(len(r.store.transactions))
	transaction.ID = id
	r.store.transactions = append(r.store.transactions, transaction)
	return id, nil
}

package memory

import (
	"context"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository creates an in-memory account repository on the store.
func NewAccountRepository(store *Store) portsrepo.AccountRepository {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepository = (*accountRepository)(nil)

func (r *accountRepository) FindAllAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	accounts := make([]domain.Account, len(r.store.accounts))
	copy(accounts, r.store.accounts)
	return accounts, nil
}

func (r *accountRepository) FindAccountByID(_ context.Context, id domain.EntityID) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index, ok := decodeID(id, len(r.store.accounts))
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	account := r.store.accounts[index]
	return &account, nil
}

func (r *accountRepository) CreateAccount(_ context.Context, account domain.Account) (domain.EntityID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := encodeID(len(r.store.accounts))
	account.ID = id
	r.store.accounts = append(r.store.accounts, account)
	return id, nil
}

func (r *accountRepository) FindAccountByIDAndUpdate(_ context.Context, id domain.EntityID, account domain.Account) (domain.EntityID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	index, ok := decodeID(id, len(r.store.accounts))
	if !ok {
		return "", apperrors.ErrEntityIDNotFound
	}
	account.ID = id
	r.store.accounts[index] = account
	return id, nil
}

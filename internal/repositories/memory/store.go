// Package memory provides vector-backed repository adapters guarded by a
// single mutex. Accounts and transactions share the lock, so the dual write
// performed when posting a transaction is atomic: concurrent service calls
// against the store are strictly serialized.
package memory

import (
	"strconv"
	"sync"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
)

// Store owns the in-memory records and the lock serializing access to them.
type Store struct {
	mu           sync.Mutex
	accounts     []domain.Account
	transactions []domain.Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewRepositoryProvider wires account and transaction repositories around a
// single shared store.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	store := NewStore()
	return &portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(store),
		TransactionRepo: NewTransactionRepository(store),
	}
}

// Identities are the 1-based position in the backing vector, rendered as
// strings. Records are never removed, so positions are stable.

func encodeID(index int) domain.EntityID {
	return domain.EntityID(strconv.Itoa(index + 1))
}

// decodeID maps an identity back to a vector index; false when the identity
// does not address an existing slot.
func decodeID(id domain.EntityID, size int) (int, bool) {
	n, err := strconv.Atoi(id.String())
	if err != nil || n < 1 || n > size {
		return 0, false
	}
	return n - 1, true
}

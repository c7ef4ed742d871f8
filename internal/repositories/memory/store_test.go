package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	"github.com/mugishaeric/finance_tracker_app/internal/repositories/memory"
)

func mustAmount(t *testing.T, v float64) domain.Amount {
	t.Helper()
	amount, err := domain.NewAmountFromFloat(v)
	require.NoError(t, err)
	return amount
}

func testAccount(name string) domain.Account {
	return *domain.NewAccount(name, "", "In-Hand", domain.Checking, domain.RWF)
}

func testTransaction(t *testing.T, accountID domain.EntityID, amount float64) domain.Transaction {
	t.Helper()
	return domain.Transaction{
		Account:         domain.AccountRefByID(accountID),
		TransactionType: domain.Expense,
		Amount:          mustAmount(t, amount),
		Fee:             domain.ZeroAmount(),
		Currency:        domain.RWF,
		Status:          domain.Pending,
	}
}

func TestAccountRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	first, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Wallet"))
	require.NoError(t, err)
	second, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Savings"))
	require.NoError(t, err)

	assert.Equal(t, domain.EntityID("1"), first)
	assert.Equal(t, domain.EntityID("2"), second)

	accounts, err := provider.AccountRepo.FindAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Wallet", accounts[0].Name)
	assert.Equal(t, "Savings", accounts[1].Name)
}

func TestAccountRepository_FindAccountByID(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	id, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Wallet"))
	require.NoError(t, err)

	account, err := provider.AccountRepo.FindAccountByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "Wallet", account.Name)

	for _, missing := range []domain.EntityID{"2", "0", "-1", "abc", ""} {
		_, err := provider.AccountRepo.FindAccountByID(ctx, missing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, "id %q", missing)
	}
}

func TestAccountRepository_FindAccountByIDAndUpdate(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	id, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Wallet"))
	require.NoError(t, err)

	updated := testAccount("Wallet")
	updated.Balance = mustAmount(t, 500)

	returnedID, err := provider.AccountRepo.FindAccountByIDAndUpdate(ctx, id, updated)
	require.NoError(t, err)
	assert.Equal(t, id, returnedID)

	account, err := provider.AccountRepo.FindAccountByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "500", account.Balance.String())
	// The stored identity survives whatever the caller put on the record.
	assert.Equal(t, id, account.ID)

	_, err = provider.AccountRepo.FindAccountByIDAndUpdate(ctx, "404", updated)
	assert.ErrorIs(t, err, apperrors.ErrEntityIDNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_CreateWritesBothRecords(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	accountID, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Wallet"))
	require.NoError(t, err)

	mutated := testAccount("Wallet")
	mutated.ID = accountID
	mutated.Balance = mustAmount(t, 70)

	transactionID, err := provider.TransactionRepo.CreateTransaction(ctx, testTransaction(t, accountID, 30), mutated)
	require.NoError(t, err)
	assert.Equal(t, domain.EntityID("1"), transactionID)

	account, err := provider.AccountRepo.FindAccountByID(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "70", account.Balance.String())

	transaction, err := provider.TransactionRepo.FindTransactionByID(ctx, transactionID)
	require.NoError(t, err)
	assert.Equal(t, transactionID, transaction.ID)
	assert.Equal(t, domain.Expense, transaction.TransactionType)
}

func TestTransactionRepository_CreateUnknownAccountWritesNothing(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	ghost := testAccount("Ghost")
	ghost.ID = "404"

	_, err := provider.TransactionRepo.CreateTransaction(ctx, testTransaction(t, "404", 30), ghost)
	require.ErrorIs(t, err, apperrors.ErrEntityIDNotFound)

	transactions, err := provider.TransactionRepo.FindAllTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransactionRepository_FindTransactionByIDMiss(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	_, err := provider.TransactionRepo.FindTransactionByID(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	provider := memory.NewRepositoryProvider()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := provider.AccountRepo.CreateAccount(ctx, testAccount("Wallet"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	accounts, err := provider.AccountRepo.FindAllAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, n)

	// Every identity addresses a distinct record.
	seen := make(map[domain.EntityID]bool, n)
	for _, account := range accounts {
		assert.False(t, seen[account.ID], "duplicate id %s", account.ID)
		seen[account.ID] = true
	}
}

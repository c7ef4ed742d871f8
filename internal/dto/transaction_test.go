package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	"github.com/mugishaeric/finance_tracker_app/internal/dto"
)

func TestCreateTransactionRequest_ToDomain_Defaults(t *testing.T) {
	req := dto.CreateTransactionRequest{
		AccountID:       "1",
		TransactionType: "expense",
		Amount:          decimal.NewFromInt(30),
	}

	transaction, err := req.ToDomain()
	require.NoError(t, err)

	id, ok := transaction.Account.ResolveID()
	require.True(t, ok)
	assert.Equal(t, domain.EntityID("1"), id)
	assert.Equal(t, domain.Expense, transaction.TransactionType)
	assert.Equal(t, domain.DefaultCurrency, transaction.Currency)
	assert.Equal(t, domain.Pending, transaction.Status)
	assert.True(t, transaction.Fee.Equal(domain.ZeroAmount()))
	assert.WithinDuration(t, time.Now().UTC(), transaction.Date, time.Second)
	assert.Nil(t, transaction.OpeningBalance)
	assert.Nil(t, transaction.ClosingBalance)
}

func TestCreateTransactionRequest_ToDomain_ExplicitDate(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CAT", 2*60*60))
	req := dto.CreateTransactionRequest{
		AccountID:       "1",
		TransactionType: "income",
		Amount:          decimal.NewFromInt(30),
		Date:            &date,
	}

	transaction, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, date.UTC(), transaction.Date)
	assert.Equal(t, time.UTC, transaction.Date.Location())
}

func TestCreateTransactionRequest_ToDomain_RejectsOutOfBoundsAmounts(t *testing.T) {
	req := dto.CreateTransactionRequest{
		AccountID:       "1",
		TransactionType: "expense",
		Amount:          decimal.NewFromInt(-30),
	}
	_, err := req.ToDomain()
	var amountErr *domain.AmountError
	require.ErrorAs(t, err, &amountErr)
	assert.Equal(t, domain.MinValue, amountErr.Kind)

	req.Amount = decimal.NewFromInt(30)
	req.Fee = decimal.NewFromInt(2_000_000)
	_, err = req.ToDomain()
	require.ErrorAs(t, err, &amountErr)
	assert.Equal(t, domain.MaxValue, amountErr.Kind)
}

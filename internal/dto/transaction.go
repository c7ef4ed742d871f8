package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// Identity and the opening/closing balance snapshots are service-derived and
// therefore absent here.
type CreateTransactionRequest struct {
	AccountID       string          `json:"accountId" binding:"required"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=expense income"`
	Amount          decimal.Decimal `json:"amount" binding:"required,amountbounds"`
	Fee             decimal.Decimal `json:"fee" binding:"omitempty,amountbounds"`
	Currency        string          `json:"currency" binding:"omitempty,oneof=RWF USD"`
	Description     string          `json:"description"`
	Date            *time.Time      `json:"date"`
	ReferenceNumber string          `json:"referenceNumber"`
	Message         string          `json:"message"`
}

// ToDomain converts the request into an unpersisted domain transaction.
// Amount and fee are validated against the domain bounds here.
func (r CreateTransactionRequest) ToDomain() (domain.Transaction, error) {
	amount, err := domain.NewAmount(r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}
	fee, err := domain.NewAmount(r.Fee)
	if err != nil {
		return domain.Transaction{}, err
	}

	date := time.Now().UTC()
	if r.Date != nil {
		date = r.Date.UTC()
	}

	currency := domain.Currency(r.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return domain.Transaction{
		Account:         domain.AccountRefByID(domain.EntityID(r.AccountID)),
		TransactionType: domain.TransactionType(r.TransactionType),
		Amount:          amount,
		Fee:             fee,
		Currency:        currency,
		Description:     r.Description,
		Date:            date,
		ReferenceNumber: r.ReferenceNumber,
		Message:         r.Message,
		Status:          domain.Pending,
	}, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              string           `json:"id"`
	AccountID       string           `json:"accountId"`
	TransactionType string           `json:"transactionType"`
	Amount          decimal.Decimal  `json:"amount"`
	Fee             decimal.Decimal  `json:"fee"`
	OpeningBalance  *decimal.Decimal `json:"openingBalance,omitempty"`
	ClosingBalance  *decimal.Decimal `json:"closingBalance,omitempty"`
	Currency        string           `json:"currency"`
	Description     string           `json:"description,omitempty"`
	Date            time.Time        `json:"date"`
	ReferenceNumber string           `json:"referenceNumber,omitempty"`
	Message         string           `json:"message,omitempty"`
	Status          string           `json:"status"`
}

// ToTransactionResponse converts a domain.Transaction to a DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              txn.ID.String(),
		TransactionType: txn.TransactionType.String(),
		Amount:          txn.Amount.Decimal(),
		Fee:             txn.Fee.Decimal(),
		Currency:        txn.Currency.String(),
		Description:     txn.Description,
		Date:            txn.Date,
		ReferenceNumber: txn.ReferenceNumber,
		Message:         txn.Message,
		Status:          string(txn.Status),
	}
	if id, ok := txn.Account.ResolveID(); ok {
		resp.AccountID = id.String()
	}
	if txn.OpeningBalance != nil {
		opening := txn.OpeningBalance.Decimal()
		resp.OpeningBalance = &opening
	}
	if txn.ClosingBalance != nil {
		closing := txn.ClosingBalance.Decimal()
		resp.ClosingBalance = &closing
	}
	return resp
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(transactions []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return ListTransactionsResponse{Transactions: res}
}

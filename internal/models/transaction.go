package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a posted transaction. Balances are
// always set by the service before a row is written, so they are non-null
// in storage.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Fee             decimal.Decimal `db:"fee"`
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	ClosingBalance  decimal.Decimal `db:"closing_balance"`
	Currency        string          `db:"currency"`
	Description     string          `db:"description"`
	Date            time.Time       `db:"date"`
	ReferenceNumber string          `db:"reference_number"`
	Message         string          `db:"message"`
	Status          string          `db:"status"`
}

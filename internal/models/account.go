package models

import (
	"github.com/shopspring/decimal"
)

// Account is the persistence shape of a financial account.
type Account struct {
	AccountID   string          `db:"account_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Platform    string          `db:"platform"`
	Balance     decimal.Decimal `db:"balance"`
	AccountType string          `db:"account_type"`
	Currency    string          `db:"currency"`
}

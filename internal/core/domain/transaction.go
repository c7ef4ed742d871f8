package domain

import (
	"errors"
	"fmt"
	"time"
)

// TransactionType indicates the direction of a posting against an account.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

var ErrInvalidTransactionType = errors.New("invalid transaction type")

// ParseTransactionType converts a string into a supported TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Expense, Income:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus tracks the processing state of a transaction.
type TransactionStatus string

const (
	Pending    TransactionStatus = "pending"
	Confirmed  TransactionStatus = "confirmed"
	Failed     TransactionStatus = "failed"
	RolledBack TransactionStatus = "rolled_back"
)

// Transaction is a single income or expense posting against one account.
// OpeningBalance and ClosingBalance are snapshots of the account balance
// immediately before and after the posting; they are always derived by the
// service and must be nil on a create request.
type Transaction struct {
	ID EntityID `json:"id"`

	// Account references the posted-against account, by identity on input
	// and as an embedded post-mutation snapshot once processed.
	Account AccountRef `json:"-"`

	TransactionType TransactionType `json:"transactionType"`

	// Amount is the magnitude applied to the account balance.
	Amount Amount `json:"amount"`

	// Fee is recorded for reporting but is not deducted from the balance.
	Fee Amount `json:"fee"`

	OpeningBalance *Amount `json:"openingBalance,omitempty"`
	ClosingBalance *Amount `json:"closingBalance,omitempty"`

	Currency Currency `json:"currency"`

	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
	Message         string    `json:"message,omitempty"`

	Status TransactionStatus `json:"status"`
}

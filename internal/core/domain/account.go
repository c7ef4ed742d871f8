package domain

import (
	"errors"
	"fmt"
)

// AccountType classifies where the money of an account lives.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	Credit   AccountType = "credit"
)

var ErrInvalidAccountType = errors.New("invalid account type")

// ErrInsufficientFunds is returned by Withdraw when the balance cannot cover
// the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ParseAccountType converts a string into a supported AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Checking, Savings, Credit:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

func (t AccountType) String() string {
	return string(t)
}

// Account is a balance-bearing record owned by the user.
// The balance is mutated only through Deposit and Withdraw.
type Account struct {
	// ID is assigned by the repository on first persistence.
	ID EntityID `json:"id"`

	// Name is a free-form label, intended unique per owner (not enforced here).
	Name string `json:"name"`

	Description string `json:"description"`

	// Platform is where the account belongs, e.g. "Bank of Kigali",
	// "MTN Mobile Money", "In-Hand".
	Platform string `json:"platform"`

	Balance Amount `json:"balance"`

	AccountType AccountType `json:"accountType"`

	Currency Currency `json:"currency"`
}

// NewAccount builds an unpersisted account with a zero balance. An empty
// currency falls back to DefaultCurrency.
func NewAccount(name, description, platform string, accountType AccountType, currency Currency) *Account {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Account{
		Name:        name,
		Description: description,
		Platform:    platform,
		Balance:     ZeroAmount(),
		AccountType: accountType,
		Currency:    currency,
	}
}

// Deposit increases the balance by amount. Fails only when the new balance
// would exceed the amount ceiling.
func (a *Account) Deposit(amount Amount) error {
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}

// Withdraw decreases the balance by amount, failing with
// ErrInsufficientFunds when the balance cannot cover it.
func (a *Account) Withdraw(amount Amount) error {
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.Balance, amount)
	}
	newBalance, err := a.Balance.Sub(amount)
	if err != nil {
		return err
	}
	a.Balance = newBalance
	return nil
}

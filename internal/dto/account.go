package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// Identity and balance are never accepted from the caller; new accounts
// always start at zero.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	AccountType string `json:"accountType" binding:"required,oneof=checking savings credit"`
	Currency    string `json:"currency" binding:"omitempty,oneof=RWF USD"`
}

// ToDomain converts the request into an unpersisted domain account.
func (r CreateAccountRequest) ToDomain() *domain.Account {
	return domain.NewAccount(
		r.Name,
		r.Description,
		r.Platform,
		domain.AccountType(r.AccountType),
		domain.Currency(r.Currency),
	)
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Platform    string          `json:"platform"`
	Balance     decimal.Decimal `json:"balance"`
	AccountType string          `json:"accountType"`
	Currency    string          `json:"currency"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID.String(),
		Name:        acc.Name,
		Description: acc.Description,
		Platform:    acc.Platform,
		Balance:     acc.Balance.Decimal(),
		AccountType: acc.AccountType.String(),
		Currency:    acc.Currency.String(),
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain accounts.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

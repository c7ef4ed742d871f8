package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mugishaeric/finance_tracker_app/internal/core/ports/services"
)

// transactionService orchestrates consistent transaction creation across
// account and transaction storage.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountSvc      portssvc.AccountSvcFacade
}

// NewTransactionService creates the transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository, accountSvc portssvc.AccountSvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
		accountSvc:      accountSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction posts a transaction against its account.
//
// The request must not carry an identity or balance snapshots; both are
// system-assigned. The account reference is resolved to an identity up
// front, the opening balance is taken from the account before the mutation,
// the closing balance after it, and the transaction is persisted together
// with the mutated account in one atomic repository call, so a mutated
// balance can never be observed without its transaction record.
func (s *transactionService) CreateTransaction(ctx context.Context, transaction domain.Transaction) (domain.EntityID, error) {
	if !transaction.ID.IsZero() {
		return "", apperrors.ErrEntityIDProvided
	}
	if transaction.OpeningBalance != nil {
		return "", apperrors.ErrOpeningBalanceProvided
	}
	if transaction.ClosingBalance != nil {
		return "", apperrors.ErrClosingBalanceProvided
	}

	accountID, ok := transaction.Account.ResolveID()
	if !ok {
		return "", &apperrors.InvalidAccountRefError{}
	}

	account, err := s.accountSvc.GetAccountByIDOrFail(ctx, accountID)
	if err != nil {
		s.LogDebug(ctx, "Transaction references unknown account", slog.String("account_id", accountID.String()))
		return "", &apperrors.InvalidAccountRefError{AccountID: accountID.String(), Cause: err}
	}

	openingBalance := account.Balance

	switch transaction.TransactionType {
	case domain.Expense:
		err = account.Withdraw(transaction.Amount)
	case domain.Income:
		err = account.Deposit(transaction.Amount)
	default:
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation,
			fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, transaction.TransactionType))
	}
	if err != nil {
		// The cause (insufficient funds, amount out of bounds) stays
		// inspectable through errors.Is on the returned error.
		s.LogDebug(ctx, "Balance mutation rejected",
			slog.String("account_id", accountID.String()),
			slog.String("amount", transaction.Amount.String()),
			slog.String("reason", err.Error()))
		return "", &apperrors.InvalidAccountRefError{AccountID: accountID.String(), Cause: err}
	}

	closingBalance := account.Balance
	transaction.OpeningBalance = &openingBalance
	transaction.ClosingBalance = &closingBalance

	// Embed the post-mutation account snapshot; the ambiguous id-or-value
	// reference never survives past this point.
	transaction.Account = domain.AccountRefByValue(account)

	id, err := s.transactionRepo.CreateTransaction(ctx, transaction, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("account_id", accountID.String()))
		return "", err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", id.String()),
		slog.String("account_id", accountID.String()),
		slog.String("type", transaction.TransactionType.String()),
		slog.String("opening_balance", openingBalance.String()),
		slog.String("closing_balance", closingBalance.String()))
	return id, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// GetTransactionByID treats a miss as an expected outcome: it returns nil, nil.
func (s *transactionService) GetTransactionByID(ctx context.Context, id domain.EntityID) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", id.String()))
		return nil, err
	}
	return transaction, nil
}

func (s *transactionService) GetTransactionByIDOrFail(ctx context.Context, id domain.EntityID) (*domain.Transaction, error) {
	transaction, err := s.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, &apperrors.NotFoundError{EntityID: id.String()}
	}
	return transaction, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mugishaeric/finance_tracker_app/internal/core/ports/services"
)

// accountService enforces account-level invariants and is the only writer of
// account balances.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the account service on top of an account repository.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, account domain.Account) (domain.EntityID, error) {
	// Identities are repository-assigned; a caller-supplied one is rejected
	// before touching storage.
	if !account.ID.IsZero() {
		s.LogDebug(ctx, "Rejected account create carrying an identity", slog.String("account_id", account.ID.String()))
		return "", apperrors.ErrEntityIDProvided
	}

	id, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", account.Name))
		return "", err
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", id.String()))
	return id, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetAccountByID treats a miss as an expected outcome: it returns nil, nil.
func (s *accountService) GetAccountByID(ctx context.Context, id domain.EntityID) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", id.String()))
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByIDOrFail(ctx context.Context, id domain.EntityID) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &apperrors.NotFoundError{EntityID: id.String()}
	}
	return account, nil
}

func (s *accountService) Withdraw(ctx context.Context, id domain.EntityID, amount domain.Amount) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEntityIDNotFound
		}
		s.LogError(ctx, err, "Failed to load account for withdrawal", slog.String("account_id", id.String()))
		return nil, err
	}

	if err := account.Withdraw(amount); err != nil {
		s.LogDebug(ctx, "Withdrawal rejected",
			slog.String("account_id", id.String()),
			slog.String("amount", amount.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	// Conditional update: the account may have vanished between the load
	// above and this write.
	if _, err := s.accountRepo.FindAccountByIDAndUpdate(ctx, id, *account); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEntityIDNotFound
		}
		s.LogError(ctx, err, "Failed to persist withdrawal", slog.String("account_id", id.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal applied",
		slog.String("account_id", id.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

func (s *accountService) Deposit(ctx context.Context, id domain.EntityID, amount domain.Amount) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEntityIDNotFound
		}
		s.LogError(ctx, err, "Failed to load account for deposit", slog.String("account_id", id.String()))
		return nil, err
	}

	if err := account.Deposit(amount); err != nil {
		s.LogDebug(ctx, "Deposit rejected",
			slog.String("account_id", id.String()),
			slog.String("amount", amount.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if _, err := s.accountRepo.FindAccountByIDAndUpdate(ctx, id, *account); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrEntityIDNotFound
		}
		s.LogError(ctx, err, "Failed to persist deposit", slog.String("account_id", id.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("account_id", id.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

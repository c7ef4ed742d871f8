package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mugishaeric/finance_tracker_app/internal/apperrors"
	"github.com/mugishaeric/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/mugishaeric/finance_tracker_app/internal/core/ports/repositories"
	"github.com/mugishaeric/finance_tracker_app/internal/models"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		Platform:    d.Platform,
		Balance:     d.Balance.Decimal(),
		AccountType: d.AccountType.String(),
		Currency:    d.Currency.String(),
	}
}

func toDomainAccount(m models.Account) (domain.Account, error) {
	balance, err := domain.NewAmount(m.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("stored balance for account %s is out of bounds: %w", m.AccountID, err)
	}
	return domain.Account{
		ID:          domain.EntityID(m.AccountID),
		Name:        m.Name,
		Description: m.Description,
		Platform:    m.Platform,
		Balance:     balance,
		AccountType: domain.AccountType(m.AccountType),
		Currency:    domain.Currency(m.Currency),
	}, nil
}

const accountColumns = `account_id, name, description, platform, balance, account_type, currency`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	if err := row.Scan(&m.AccountID, &m.Name, &m.Description, &m.Platform, &m.Balance, &m.AccountType, &m.Currency); err != nil {
		return domain.Account{}, err
	}
	return toDomainAccount(m)
}

func (r *PgxAccountRepository) FindAllAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, id domain.EntityID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	account, err := scanAccount(r.Pool.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", id, err)
	}
	return &account, nil
}

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.EntityID, error) {
	account.ID = domain.EntityID(uuid.NewString())
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, description, platform, balance, account_type, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Description,
		m.Platform,
		m.Balance,
		m.AccountType,
		m.Currency,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return account.ID, nil
}

func (r *PgxAccountRepository) FindAccountByIDAndUpdate(ctx context.Context, id domain.EntityID, account domain.Account) (domain.EntityID, error) {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, description = $3, platform = $4, balance = $5, account_type = $6, currency = $7
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		id.String(),
		m.Name,
		m.Description,
		m.Platform,
		m.Balance,
		m.AccountType,
		m.Currency,
	)
	if err != nil {
		return "", fmt.Errorf("failed to update account %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return "", apperrors.ErrEntityIDNotFound
	}
	return id, nil
}

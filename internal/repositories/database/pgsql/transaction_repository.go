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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction, accountID domain.EntityID) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.ID.String(),
		AccountID:       accountID.String(),
		TransactionType: d.TransactionType.String(),
		Amount:          d.Amount.Decimal(),
		Fee:             d.Fee.Decimal(),
		Currency:        d.Currency.String(),
		Description:     d.Description,
		Date:            d.Date,
		ReferenceNumber: d.ReferenceNumber,
		Message:         d.Message,
		Status:          string(d.Status),
	}
	if d.OpeningBalance != nil {
		m.OpeningBalance = d.OpeningBalance.Decimal()
	}
	if d.ClosingBalance != nil {
		m.ClosingBalance = d.ClosingBalance.Decimal()
	}
	return m
}

func toDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	amount, err := domain.NewAmount(m.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored amount for transaction %s is out of bounds: %w", m.TransactionID, err)
	}
	fee, err := domain.NewAmount(m.Fee)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored fee for transaction %s is out of bounds: %w", m.TransactionID, err)
	}
	opening, err := domain.NewAmount(m.OpeningBalance)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored opening balance for transaction %s is out of bounds: %w", m.TransactionID, err)
	}
	closing, err := domain.NewAmount(m.ClosingBalance)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("stored closing balance for transaction %s is out of bounds: %w", m.TransactionID, err)
	}

	return domain.Transaction{
		ID:              domain.EntityID(m.TransactionID),
		Account:         domain.AccountRefByID(domain.EntityID(m.AccountID)),
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          amount,
		Fee:             fee,
		OpeningBalance:  &opening,
		ClosingBalance:  &closing,
		Currency:        domain.Currency(m.Currency),
		Description:     m.Description,
		Date:            m.Date,
		ReferenceNumber: m.ReferenceNumber,
		Message:         m.Message,
		Status:          domain.TransactionStatus(m.Status),
	}, nil
}

const transactionColumns = `transaction_id, account_id, transaction_type, amount, fee, opening_balance, closing_balance, currency, description, date, reference_number, message, status`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	if err := row.Scan(
		&m.TransactionID, &m.AccountID, &m.TransactionType, &m.Amount, &m.Fee,
		&m.OpeningBalance, &m.ClosingBalance, &m.Currency, &m.Description,
		&m.Date, &m.ReferenceNumber, &m.Message, &m.Status,
	); err != nil {
		return domain.Transaction{}, err
	}
	return toDomainTransaction(m)
}

func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transaction rows: %w", err)
	}
	return transactions, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id domain.EntityID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	transaction, err := scanTransaction(r.Pool.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}
	return &transaction, nil
}

// CreateTransaction writes the mutated account balance and the transaction
// row inside one database transaction. The account row is locked and its
// existence verified before either write happens.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, transaction domain.Transaction, account domain.Account) (domain.EntityID, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	var lockedID string
	err = tx.QueryRow(ctx, `SELECT account_id FROM accounts WHERE account_id = $1 FOR UPDATE;`, account.ID.String()).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrEntityIDNotFound
		}
		return "", fmt.Errorf("failed to lock account %s: %w", account.ID, err)
	}

	_, err = tx.Exec(ctx, `UPDATE accounts SET balance = $2 WHERE account_id = $1;`, account.ID.String(), account.Balance.Decimal())
	if err != nil {
		return "", fmt.Errorf("failed to update balance of account %s: %w", account.ID, err)
	}

	transaction.ID = domain.EntityID(uuid.NewString())
	m := toModelTransaction(transaction, account.ID)

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (transaction_id, account_id, transaction_type, amount, fee, opening_balance, closing_balance, currency, description, date, reference_number, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		m.TransactionID,
		m.AccountID,
		m.TransactionType,
		m.Amount,
		m.Fee,
		m.OpeningBalance,
		m.ClosingBalance,
		m.Currency,
		m.Description,
		m.Date,
		m.ReferenceNumber,
		m.Message,
		m.Status,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction posting: %w", err)
	}
	return transaction.ID, nil
}

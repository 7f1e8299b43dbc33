package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	q Querier
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(q Querier) TransactionRepository {
	return &transactionRepository{q: q}
}

const transactionColumns = "id, user_id, account_id, type, amount, category, description, occurred_at, created_at"

// Create inserts a new ledger entry
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions
			(id, user_id, account_id, type, amount, category, description, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		txn.ID, txn.UserID, txn.AccountID, txn.Type, txn.Amount,
		txn.Category, txn.Description, txn.OccurredAt, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", mapError(err))
	}

	return nil
}

// FindByID retrieves a transaction owned by userID
func (r *transactionRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE id = $1 AND user_id = $2"

	var txn models.Transaction
	err := r.q.QueryRowContext(ctx, query, id, userID).Scan(
		&txn.ID,
		&txn.UserID,
		&txn.AccountID,
		&txn.Type,
		&txn.Amount,
		&txn.Category,
		&txn.Description,
		&txn.OccurredAt,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", mapError(err))
	}

	return &txn, nil
}

// ListByUser retrieves all transactions owned by userID, newest first
func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = $1 ORDER BY occurred_at DESC"

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	txns := []models.Transaction{}
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.UserID,
			&txn.AccountID,
			&txn.Type,
			&txn.Amount,
			&txn.Category,
			&txn.Description,
			&txn.OccurredAt,
			&txn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

// Delete removes a transaction owned by userID
func (r *transactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return requireAffected(result)
}

// DeleteByAccount removes every transaction referencing the account
func (r *transactionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	if _, err := r.q.ExecContext(ctx,
		"DELETE FROM transactions WHERE account_id = $1", accountID); err != nil {
		return fmt.Errorf("failed to delete transactions for account: %w", err)
	}
	return nil
}

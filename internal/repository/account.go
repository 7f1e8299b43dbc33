package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

// AccountRepository defines the interface for account data access.
//
// All lookups are scoped by the owning user so one user's accounts are
// invisible to another's requests.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error)
	FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*models.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// accountRepository implements AccountRepository
type accountRepository struct {
	q Querier
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q Querier) AccountRepository {
	return &accountRepository{q: q}
}

const accountColumns = "id, user_id, name, type, balance, created_at, updated_at"

// Create inserts a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, name, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		account.ID, account.UserID, account.Name, account.Type,
		account.Balance, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", mapError(err))
	}

	return nil
}

// FindByID retrieves an account owned by userID
func (r *accountRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE id = $1 AND user_id = $2"
	return r.scanOne(ctx, query, id, userID)
}

// FindByIDForUpdate retrieves an account owned by userID and locks its row
// for the remainder of the enclosing transaction. Balance adjustments must
// go through this lookup so concurrent mutations of the same account
// serialize instead of overwriting each other.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE id = $1 AND user_id = $2 FOR UPDATE"
	return r.scanOne(ctx, query, id, userID)
}

func (r *accountRepository) scanOne(ctx context.Context, query string, args ...any) (*models.Account, error) {
	var account models.Account
	err := r.q.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", mapError(err))
	}

	return &account, nil
}

// ListByUser retrieves all accounts owned by userID, oldest first
func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE user_id = $1 ORDER BY created_at"

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Name,
			&account.Type,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Update persists the account's name, type, and balance
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, type = $4, balance = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.q.ExecContext(ctx, query,
		account.ID, account.UserID, account.Name, account.Type, account.Balance)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return requireAffected(result)
}

// SetBalance writes a recomputed balance. Callers must hold the row lock
// taken by FindByIDForUpdate.
func (r *accountRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("failed to set account balance: %w", err)
	}

	return requireAffected(result)
}

// Delete removes an account owned by userID
func (r *accountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM accounts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return requireAffected(result)
}

func requireAffected(result interface{ RowsAffected() (int64, error) }) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

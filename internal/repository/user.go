package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
}

// userRepository implements UserRepository
type userRepository struct {
	q Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(q Querier) UserRepository {
	return &userRepository{q: q}
}

const userColumns = "id, username, email, password_hash, created_at, updated_at"

// Create inserts a new user with its pre-assigned identifier
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapError(err))
	}

	return nil
}

// FindByID retrieves a user by its UUID
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"

	var user models.User
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", mapError(err))
	}

	return &user, nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = $1"

	var user models.User
	err := r.q.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", mapError(err))
	}

	return &user, nil
}

// List retrieves all users, newest first
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at DESC"

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// Delete removes a user; dependent accounts, cards, and transactions are
// removed by the schema's cascade rules.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DeleteByEmail removes the user with the given email, if any. Missing users
// are not an error: blocking an address that never registered is valid.
func (r *userRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.q.ExecContext(ctx, "DELETE FROM users WHERE email = $1", email); err != nil {
		return fmt.Errorf("failed to delete user by email: %w", err)
	}
	return nil
}

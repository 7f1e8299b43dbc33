package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int, error)
}

// adminRepository implements AdminRepository
type adminRepository struct {
	q Querier
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(q Querier) AdminRepository {
	return &adminRepository{q: q}
}

const adminColumns = "id, username, email, password_hash, role, last_login, created_at"

// Create inserts a new admin account
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
		admin.Role, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", mapError(err))
	}

	return nil
}

// FindByID retrieves an admin by its UUID
func (r *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admins WHERE id = $1"
	return r.scanOne(ctx, query, id)
}

// FindByUsername retrieves an admin by username
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := "SELECT " + adminColumns + " FROM admins WHERE username = $1"
	return r.scanOne(ctx, query, username)
}

func (r *adminRepository) scanOne(ctx context.Context, query string, arg any) (*models.Admin, error) {
	var admin models.Admin
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.LastLogin,
		&admin.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", mapError(err))
	}

	return &admin, nil
}

// UpdateLastLogin records a successful admin login
func (r *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.q.ExecContext(ctx,
		"UPDATE admins SET last_login = $2 WHERE id = $1", id, at)
	if err != nil {
		return fmt.Errorf("failed to update admin last login: %w", err)
	}

	return requireAffected(result)
}

// Count returns the number of admin accounts
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

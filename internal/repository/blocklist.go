package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// BlocklistRepository defines the interface for blocked-user data access
type BlocklistRepository interface {
	Create(ctx context.Context, blocked *models.BlockedUser) error
	FindByEmail(ctx context.Context, email string) (*models.BlockedUser, error)
	List(ctx context.Context) ([]models.BlockedUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// blocklistRepository implements BlocklistRepository
type blocklistRepository struct {
	q Querier
}

// NewBlocklistRepository creates a new BlocklistRepository
func NewBlocklistRepository(q Querier) BlocklistRepository {
	return &blocklistRepository{q: q}
}

// Create inserts a new block record. The device fingerprint is stored as a
// JSON document.
func (r *blocklistRepository) Create(ctx context.Context, blocked *models.BlockedUser) error {
	deviceJSON, err := json.Marshal(blocked.DeviceInfo)
	if err != nil {
		return fmt.Errorf("failed to encode device info: %w", err)
	}

	query := `
		INSERT INTO blocked_users (id, email, reason, ip_address, user_agent, device_info, blocked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.q.ExecContext(ctx, query,
		blocked.ID, blocked.Email, blocked.Reason, blocked.IPAddress,
		blocked.UserAgent, deviceJSON, blocked.BlockedAt)
	if err != nil {
		return fmt.Errorf("failed to create blocked user: %w", mapError(err))
	}

	return nil
}

// FindByEmail retrieves a block record by email
func (r *blocklistRepository) FindByEmail(ctx context.Context, email string) (*models.BlockedUser, error) {
	query := `
		SELECT id, email, reason, ip_address, user_agent, device_info, blocked_at
		FROM blocked_users
		WHERE email = $1
	`

	var blocked models.BlockedUser
	var deviceJSON []byte
	err := r.q.QueryRowContext(ctx, query, email).Scan(
		&blocked.ID,
		&blocked.Email,
		&blocked.Reason,
		&blocked.IPAddress,
		&blocked.UserAgent,
		&deviceJSON,
		&blocked.BlockedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find blocked user: %w", mapError(err))
	}

	if err := json.Unmarshal(deviceJSON, &blocked.DeviceInfo); err != nil {
		return nil, fmt.Errorf("failed to decode device info: %w", err)
	}

	return &blocked, nil
}

// List retrieves all block records, newest first
func (r *blocklistRepository) List(ctx context.Context) ([]models.BlockedUser, error) {
	query := `
		SELECT id, email, reason, ip_address, user_agent, device_info, blocked_at
		FROM blocked_users
		ORDER BY blocked_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	blockedUsers := []models.BlockedUser{}
	for rows.Next() {
		var blocked models.BlockedUser
		var deviceJSON []byte
		if err := rows.Scan(
			&blocked.ID,
			&blocked.Email,
			&blocked.Reason,
			&blocked.IPAddress,
			&blocked.UserAgent,
			&deviceJSON,
			&blocked.BlockedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blocked user: %w", err)
		}
		if err := json.Unmarshal(deviceJSON, &blocked.DeviceInfo); err != nil {
			return nil, fmt.Errorf("failed to decode device info: %w", err)
		}
		blockedUsers = append(blockedUsers, blocked)
	}

	return blockedUsers, rows.Err()
}

// Delete removes a block record (the admin "unblock" action)
func (r *blocklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx, "DELETE FROM blocked_users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete blocked user: %w", err)
	}

	return requireAffected(result)
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}

// cardRepository implements CardRepository
type cardRepository struct {
	q Querier
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(q Querier) CardRepository {
	return &cardRepository{q: q}
}

// Create inserts a new card
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (id, user_id, account_id, type, number, expiry, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		card.ID, card.UserID, card.AccountID, card.Type, card.Number,
		card.Expiry, card.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", mapError(err))
	}

	return nil
}

// ListByUser retrieves all cards owned by userID, oldest first
func (r *cardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	query := `
		SELECT id, user_id, account_id, type, number, expiry, created_at
		FROM cards
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	cards := []models.Card{}
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.AccountID,
			&card.Type,
			&card.Number,
			&card.Expiry,
			&card.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Delete removes a card owned by userID
func (r *cardRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM cards WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return requireAffected(result)
}

// DeleteByAccount removes every card referencing the account
func (r *cardRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	if _, err := r.q.ExecContext(ctx,
		"DELETE FROM cards WHERE account_id = $1", accountID); err != nil {
		return fmt.Errorf("failed to delete cards for account: %w", err)
	}
	return nil
}

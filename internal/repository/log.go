package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fintrackhq/fintrack/internal/models"
)

// LogRepository defines the interface for the append-only audit trail
type LogRepository interface {
	Insert(ctx context.Context, entry *models.Log) error
	Query(ctx context.Context, filter models.LogFilter) ([]models.Log, error)
}

// logRepository implements LogRepository
type logRepository struct {
	q Querier
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(q Querier) LogRepository {
	return &logRepository{q: q}
}

const defaultLogLimit = 100

// Insert appends an audit entry
func (r *logRepository) Insert(ctx context.Context, entry *models.Log) error {
	var detailsJSON []byte
	if entry.Details != nil {
		var err error
		detailsJSON, err = json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to encode log details: %w", err)
		}
	}

	query := `
		INSERT INTO logs (type, category, message, details, ts)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.q.ExecContext(ctx, query,
		entry.Type, entry.Category, entry.Message, detailsJSON, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}

	return nil
}

// Query retrieves audit entries matching the filter, newest first
func (r *logRepository) Query(ctx context.Context, filter models.LogFilter) ([]models.Log, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, clause+"$"+strconv.Itoa(len(args)))
	}

	if filter.Type != "" {
		addCondition("type = ", filter.Type)
	}
	if filter.Category != "" {
		addCondition("category = ", filter.Category)
	}
	if filter.Start != nil {
		addCondition("ts >= ", *filter.Start)
	}
	if filter.End != nil {
		addCondition("ts <= ", *filter.End)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	query := "SELECT id, type, category, message, details, ts FROM logs"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY ts DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	logs := []models.Log{}
	for rows.Next() {
		var entry models.Log
		var detailsJSON []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Category,
			&entry.Message,
			&detailsJSON,
			&entry.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &entry.Details); err != nil {
				return nil, fmt.Errorf("failed to decode log details: %w", err)
			}
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}

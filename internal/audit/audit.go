// Package audit writes the application's append-only audit trail.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
)

// Recorder appends entries to the audit trail. Recording is best-effort: a
// failed insert is logged and swallowed so it can never fail or block the
// request that triggered it.
type Recorder struct {
	logs   repository.LogRepository
	logger *slog.Logger
}

// NewRecorder creates a Recorder backed by the given log repository
func NewRecorder(logs repository.LogRepository, logger *slog.Logger) *Recorder {
	return &Recorder{logs: logs, logger: logger}
}

// Record appends one audit entry
func (r *Recorder) Record(ctx context.Context, typ models.LogType, category models.LogCategory, message string, details map[string]any) {
	entry := &models.Log{
		Type:      typ,
		Category:  category,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}

	if err := r.logs.Insert(ctx, entry); err != nil {
		r.logger.Error("failed to write audit log",
			"error", err,
			"message", message,
			"category", category,
		)
	}
}

// Info records an informational entry
func (r *Recorder) Info(ctx context.Context, category models.LogCategory, message string, details map[string]any) {
	r.Record(ctx, models.LogTypeInfo, category, message, details)
}

// Warn records a warning entry
func (r *Recorder) Warn(ctx context.Context, category models.LogCategory, message string, details map[string]any) {
	r.Record(ctx, models.LogTypeWarning, category, message, details)
}

// Error records an error entry
func (r *Recorder) Error(ctx context.Context, category models.LogCategory, message string, details map[string]any) {
	r.Record(ctx, models.LogTypeError, category, message, details)
}

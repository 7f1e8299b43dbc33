package models

import "time"

// LogType classifies the severity of an audit log entry
type LogType string

const (
	LogTypeError   LogType = "error"
	LogTypeWarning LogType = "warning"
	LogTypeInfo    LogType = "info"
)

// LogCategory groups audit log entries by subsystem
type LogCategory string

const (
	LogCategoryAuth   LogCategory = "auth"
	LogCategoryAdmin  LogCategory = "admin"
	LogCategorySystem LogCategory = "system"
	LogCategoryUser   LogCategory = "user"
)

// Log is an append-only audit record. Entries are never mutated or deleted
// by the application.
type Log struct {
	Timestamp time.Time      `json:"timestamp" db:"ts"`
	Message   string         `json:"message" db:"message"`
	Type      LogType        `json:"type" db:"type"`
	Category  LogCategory    `json:"category" db:"category"`
	Details   map[string]any `json:"details,omitempty" db:"details"`
	ID        int64          `json:"id" db:"id"`
}

// LogFilter narrows an audit log query. Zero values mean "no constraint".
type LogFilter struct {
	Start    *time.Time
	End      *time.Time
	Type     LogType
	Category LogCategory
	Limit    int
}

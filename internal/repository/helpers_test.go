package repository

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/models"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	truncateTables(t, database)

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{"transactions", "cards", "accounts", "users", "blocked_users", "admins", "logs"}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func createTestUser(t *testing.T, database *db.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now(),
	}
	if err := NewUserRepository(database).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestAccount(t *testing.T, database *db.DB, userID uuid.UUID, name, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      "checking",
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: time.Now(),
	}
	if err := NewAccountRepository(database).Create(context.Background(), account); err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

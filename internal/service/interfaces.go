package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Authenticator handles user registration and login
type Authenticator interface {
	Register(ctx context.Context, input RegisterInput, ip, userAgent string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error)
}

// Ledger handles account, card, and transaction operations for one user
type Ledger interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	CreateAccount(ctx context.Context, userID uuid.UUID, input CreateAccountInput) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, input UpdateAccountInput) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error)
	CreateCard(ctx context.Context, userID uuid.UUID, input CreateCardInput) (*models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID uuid.UUID, input CreateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) error
}

// Administrator handles the admin surface
type Administrator interface {
	Login(ctx context.Context, username, password string) (*AdminAuthResult, error)
	FindAdmin(ctx context.Context, adminID uuid.UUID) (*models.Admin, error)
	ListUsers(ctx context.Context) ([]models.PublicUser, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	BlockUser(ctx context.Context, input BlockUserInput, ip, userAgent string) (*models.BlockedUser, error)
	ListBlockedUsers(ctx context.Context) ([]models.BlockedUser, error)
	UnblockUser(ctx context.Context, id uuid.UUID) error
	QueryLogs(ctx context.Context, filter models.LogFilter) ([]models.Log, error)
}

// Ensure concrete types implement interfaces
var (
	_ Authenticator = (*AuthService)(nil)
	_ Ledger        = (*LedgerService)(nil)
	_ Administrator = (*AdminService)(nil)
)

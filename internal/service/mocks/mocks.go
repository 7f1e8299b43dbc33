// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/service"
)

// MockAuthenticator mocks service.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

// NewMockAuthenticator creates a MockAuthenticator with cleanup-time
// expectation checks
func NewMockAuthenticator(t *testing.T) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthenticator) Register(ctx context.Context, input service.RegisterInput, ip, userAgent string) (*service.AuthResult, error) {
	args := m.Called(ctx, input, ip, userAgent)
	if result, ok := args.Get(0).(*service.AuthResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if result, ok := args.Get(0).(*service.AuthResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticator) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.PublicUser); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLedger mocks service.Ledger
type MockLedger struct {
	mock.Mock
}

// NewMockLedger creates a MockLedger with cleanup-time expectation checks
func NewMockLedger(t *testing.T) *MockLedger {
	m := &MockLedger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLedger) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	args := m.Called(ctx, userID)
	if accounts, ok := args.Get(0).([]models.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) CreateAccount(ctx context.Context, userID uuid.UUID, input service.CreateAccountInput) (*models.Account, error) {
	args := m.Called(ctx, userID, input)
	if account, ok := args.Get(0).(*models.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, input service.UpdateAccountInput) (*models.Account, error) {
	args := m.Called(ctx, userID, accountID, input)
	if account, ok := args.Get(0).(*models.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	return m.Called(ctx, userID, accountID).Error(0)
}

func (m *MockLedger) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	args := m.Called(ctx, userID)
	if cards, ok := args.Get(0).([]models.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) CreateCard(ctx context.Context, userID uuid.UUID, input service.CreateCardInput) (*models.Card, error) {
	args := m.Called(ctx, userID, input)
	if card, ok := args.Get(0).(*models.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	return m.Called(ctx, userID, cardID).Error(0)
}

func (m *MockLedger) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if txns, ok := args.Get(0).([]models.Transaction); ok {
		return txns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) CreateTransaction(ctx context.Context, userID uuid.UUID, input service.CreateTransactionInput) (*models.Transaction, error) {
	args := m.Called(ctx, userID, input)
	if txn, ok := args.Get(0).(*models.Transaction); ok {
		return txn, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedger) DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) error {
	return m.Called(ctx, userID, txnID).Error(0)
}

// MockAdministrator mocks service.Administrator
type MockAdministrator struct {
	mock.Mock
}

// NewMockAdministrator creates a MockAdministrator with cleanup-time
// expectation checks
func NewMockAdministrator(t *testing.T) *MockAdministrator {
	m := &MockAdministrator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdministrator) Login(ctx context.Context, username, password string) (*service.AdminAuthResult, error) {
	args := m.Called(ctx, username, password)
	if result, ok := args.Get(0).(*service.AdminAuthResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdministrator) FindAdmin(ctx context.Context, adminID uuid.UUID) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	if admin, ok := args.Get(0).(*models.Admin); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdministrator) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]models.PublicUser); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdministrator) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAdministrator) BlockUser(ctx context.Context, input service.BlockUserInput, ip, userAgent string) (*models.BlockedUser, error) {
	args := m.Called(ctx, input, ip, userAgent)
	if blocked, ok := args.Get(0).(*models.BlockedUser); ok {
		return blocked, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdministrator) ListBlockedUsers(ctx context.Context) ([]models.BlockedUser, error) {
	args := m.Called(ctx)
	if blocked, ok := args.Get(0).([]models.BlockedUser); ok {
		return blocked, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdministrator) UnblockUser(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdministrator) QueryLogs(ctx context.Context, filter models.LogFilter) ([]models.Log, error) {
	args := m.Called(ctx, filter)
	if logs, ok := args.Get(0).([]models.Log); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

// Compile-time interface checks
var (
	_ service.Authenticator = (*MockAuthenticator)(nil)
	_ service.Ledger        = (*MockLedger)(nil)
	_ service.Administrator = (*MockAdministrator)(nil)
)

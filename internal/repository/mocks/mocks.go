// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackhq/fintrack/internal/models"
)

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a MockUserRepository with cleanup-time
// expectation checks
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// MockAccountRepository mocks repository.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository with cleanup-time
// expectation checks
func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, userID, id)
	if account, ok := args.Get(0).(*models.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, userID, id)
	if account, ok := args.Get(0).(*models.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	args := m.Called(ctx, userID)
	if accounts, ok := args.Get(0).([]models.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return m.Called(ctx, id, balance).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

// MockCardRepository mocks repository.CardRepository
type MockCardRepository struct {
	mock.Mock
}

// NewMockCardRepository creates a MockCardRepository with cleanup-time
// expectation checks
func NewMockCardRepository(t *testing.T) *MockCardRepository {
	m := &MockCardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	args := m.Called(ctx, userID)
	if cards, ok := args.Get(0).([]models.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockCardRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockTransactionRepository mocks repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a MockTransactionRepository with
// cleanup-time expectation checks
func NewMockTransactionRepository(t *testing.T) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if txn, ok := args.Get(0).(*models.Transaction); ok {
		return txn, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if txns, ok := args.Get(0).([]models.Transaction); ok {
		return txns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockTransactionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockBlocklistRepository mocks repository.BlocklistRepository
type MockBlocklistRepository struct {
	mock.Mock
}

// NewMockBlocklistRepository creates a MockBlocklistRepository with
// cleanup-time expectation checks
func NewMockBlocklistRepository(t *testing.T) *MockBlocklistRepository {
	m := &MockBlocklistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBlocklistRepository) Create(ctx context.Context, blocked *models.BlockedUser) error {
	return m.Called(ctx, blocked).Error(0)
}

func (m *MockBlocklistRepository) FindByEmail(ctx context.Context, email string) (*models.BlockedUser, error) {
	args := m.Called(ctx, email)
	if blocked, ok := args.Get(0).(*models.BlockedUser); ok {
		return blocked, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlocklistRepository) List(ctx context.Context) ([]models.BlockedUser, error) {
	args := m.Called(ctx)
	if blocked, ok := args.Get(0).([]models.BlockedUser); ok {
		return blocked, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlocklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockAdminRepository mocks repository.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

// NewMockAdminRepository creates a MockAdminRepository with cleanup-time
// expectation checks
func NewMockAdminRepository(t *testing.T) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if admin, ok := args.Get(0).(*models.Admin); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if admin, ok := args.Get(0).(*models.Admin); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockLogRepository mocks repository.LogRepository
type MockLogRepository struct {
	mock.Mock
}

// NewMockLogRepository creates a MockLogRepository with cleanup-time
// expectation checks
func NewMockLogRepository(t *testing.T) *MockLogRepository {
	m := &MockLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLogRepository) Insert(ctx context.Context, entry *models.Log) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockLogRepository) Query(ctx context.Context, filter models.LogFilter) ([]models.Log, error) {
	args := m.Called(ctx, filter)
	if logs, ok := args.Get(0).([]models.Log); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrackhq/fintrack/internal/audit"
	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
)

// AdminService handles the administrator surface: admin auth, user
// management, the blocklist, and audit log queries.
type AdminService struct {
	db     *db.DB
	tokens *TokenManager
	audit  *audit.Recorder
}

// NewAdminService creates a new AdminService
func NewAdminService(database *db.DB, tokens *TokenManager, recorder *audit.Recorder) *AdminService {
	return &AdminService{
		db:     database,
		tokens: tokens,
		audit:  recorder,
	}
}

// AdminAuthResult is a successful admin authentication
type AdminAuthResult struct {
	Token string             `json:"token"`
	Admin models.PublicAdmin `json:"admin"`
}

// BlockUserInput carries an admin block request
type BlockUserInput struct {
	Email      string            `json:"email"`
	Reason     string            `json:"reason"`
	DeviceInfo models.DeviceInfo `json:"deviceInfo"`
}

// Login authenticates an administrator and records the login time
func (s *AdminService) Login(ctx context.Context, username, password string) (*AdminAuthResult, error) {
	adminRepo := repository.NewAdminRepository(s.db)

	admin, err := adminRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, internalError("failed to find admin: %v", err)
	}

	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		s.audit.Warn(ctx, models.LogCategoryAdmin, "Invalid login attempt", map[string]any{
			"username": username,
		})
		return nil, &ServiceError{Code: ErrCodeInvalidCredentials, Message: "Invalid credentials"}
	}

	now := time.Now()
	if err := adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, internalError("failed to record login: %v", err)
	}
	admin.LastLogin = &now

	token, err := s.tokens.IssueAdminToken(admin.ID)
	if err != nil {
		return nil, internalError("failed to issue token: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAdmin, "Admin logged in", map[string]any{
		"adminId": admin.ID.String(),
	})

	return &AdminAuthResult{Token: token, Admin: admin.Public()}, nil
}

// FindAdmin returns the admin with the given id; used by the admin auth
// middleware to confirm a token still maps to a live account.
func (s *AdminService) FindAdmin(ctx context.Context, adminID uuid.UUID) (*models.Admin, error) {
	admin, err := repository.NewAdminRepository(s.db).FindByID(ctx, adminID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "admin not found"}
	}
	if err != nil {
		return nil, internalError("failed to find admin: %v", err)
	}
	return admin, nil
}

// ListUsers returns every registered user, sanitized
func (s *AdminService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := repository.NewUserRepository(s.db).List(ctx)
	if err != nil {
		return nil, internalError("failed to list users: %v", err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// DeleteUser removes a user and, via schema cascades, their entire ledger
func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := repository.NewUserRepository(s.db).Delete(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeUserNotFound, Message: "user not found"}
	}
	if err != nil {
		return internalError("failed to delete user: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAdmin, "User deleted", map[string]any{
		"userId": userID.String(),
	})
	return nil
}

// BlockUser creates a block record and deletes the matching user account,
// if one exists, as one committed unit.
func (s *AdminService) BlockUser(ctx context.Context, input BlockUserInput, ip, userAgent string) (*models.BlockedUser, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, &ServiceError{Code: ErrCodeMissingFields, Message: "email is required"}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, internalError("failed to start transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	blocklistRepo := repository.NewBlocklistRepository(tx)

	if _, err := blocklistRepo.FindByEmail(ctx, email); err == nil {
		s.audit.Warn(ctx, models.LogCategoryAdmin, "User already blocked", map[string]any{
			"email": email,
		})
		return nil, &ServiceError{Code: ErrCodeAlreadyBlocked, Message: "User is already blocked"}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, internalError("failed to check blocklist: %v", err)
	}

	blocked := &models.BlockedUser{
		ID:         uuid.New(),
		Email:      email,
		Reason:     input.Reason,
		IPAddress:  ip,
		UserAgent:  userAgent,
		DeviceInfo: input.DeviceInfo,
		BlockedAt:  time.Now(),
	}

	if err := blocklistRepo.Create(ctx, blocked); err != nil {
		return nil, internalError("failed to create block record: %v", err)
	}
	if err := repository.NewUserRepository(tx).DeleteByEmail(ctx, email); err != nil {
		return nil, internalError("failed to delete blocked account: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAdmin, "User blocked", map[string]any{
		"email":  email,
		"reason": input.Reason,
	})

	return blocked, nil
}

// ListBlockedUsers returns all block records, newest first
func (s *AdminService) ListBlockedUsers(ctx context.Context) ([]models.BlockedUser, error) {
	blocked, err := repository.NewBlocklistRepository(s.db).List(ctx)
	if err != nil {
		return nil, internalError("failed to list blocked users: %v", err)
	}
	return blocked, nil
}

// UnblockUser removes a block record
func (s *AdminService) UnblockUser(ctx context.Context, id uuid.UUID) error {
	err := repository.NewBlocklistRepository(s.db).Delete(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeBlockedNotFound, Message: "blocked user not found"}
	}
	if err != nil {
		return internalError("failed to unblock user: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAdmin, "User unblocked", map[string]any{
		"blockedId": id.String(),
	})
	return nil
}

// QueryLogs returns audit entries matching the filter
func (s *AdminService) QueryLogs(ctx context.Context, filter models.LogFilter) ([]models.Log, error) {
	logs, err := repository.NewLogRepository(s.db).Query(ctx, filter)
	if err != nil {
		return nil, internalError("failed to query logs: %v", err)
	}
	return logs, nil
}

// EnsureBootstrapAdmin creates the configured admin account at startup when
// no admin exists yet. A no-op when unconfigured or already provisioned.
func (s *AdminService) EnsureBootstrapAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	if cfg.Username == "" {
		return nil
	}

	adminRepo := repository.NewAdminRepository(s.db)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return internalError("failed to count admins: %v", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError("failed to hash admin password: %v", err)
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         models.AdminRoleSuper,
		CreatedAt:    time.Now(),
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return internalError("failed to create bootstrap admin: %v", err)
	}

	s.audit.Info(ctx, models.LogCategorySystem, "Bootstrap admin created", map[string]any{
		"username": cfg.Username,
	})
	return nil
}

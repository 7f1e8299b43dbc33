package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrackhq/fintrack/internal/audit"
	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
)

// AuthService handles user registration, login, and profile lookups
type AuthService struct {
	db      *db.DB
	tokens  *TokenManager
	matcher *BlocklistMatcher
	audit   *audit.Recorder
}

// NewAuthService creates a new AuthService
func NewAuthService(database *db.DB, tokens *TokenManager, matcher *BlocklistMatcher, recorder *audit.Recorder) *AuthService {
	return &AuthService{
		db:      database,
		tokens:  tokens,
		matcher: matcher,
		audit:   recorder,
	}
}

// RegisterInput carries a registration request
type RegisterInput struct {
	Username   string            `json:"username"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	DeviceInfo models.DeviceInfo `json:"deviceInfo"`
}

// AuthResult is a successful user authentication: a bearer token plus the
// sanitized user
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates a user account unless the presented identity matches the
// blocklist. Returns a signed token for the new user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, ip, userAgent string) (*AuthResult, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		s.audit.Warn(ctx, models.LogCategoryAuth, "Registration failed - missing fields", nil)
		return nil, &ServiceError{Code: ErrCodeMissingFields, Message: "All fields are required"}
	}
	if err := ValidateUsername(input.Username); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := ValidateEmail(email); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}

	identity := Identity{
		Email:     email,
		IPAddress: ip,
		UserAgent: userAgent,
		Device:    input.DeviceInfo,
	}
	record, rule, err := s.matcher.Match(ctx, identity)
	if err != nil {
		return nil, internalError("failed to check blocklist: %v", err)
	}
	if record != nil {
		s.audit.Warn(ctx, models.LogCategoryAuth, "Blocked user attempted access", map[string]any{
			"email":        email,
			"matched_rule": rule,
		})
		return nil, &ServiceError{
			Code:    ErrCodeBlocked,
			Message: "Account creation not allowed",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internalError("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	userRepo := repository.NewUserRepository(s.db)
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			s.audit.Warn(ctx, models.LogCategoryAuth, "Registration failed - user exists", map[string]any{
				"username": input.Username,
				"email":    email,
			})
			field := "email"
			if _, lookupErr := userRepo.FindByUsername(ctx, input.Username); lookupErr == nil {
				field = "username"
			}
			return nil, &ServiceError{Code: ErrCodeDuplicateUser, Message: "User already exists", Details: field}
		}
		return nil, internalError("failed to create user: %v", err)
	}

	token, err := s.tokens.IssueUserToken(user.ID)
	if err != nil {
		return nil, internalError("failed to issue token: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAuth, "New user registered", map[string]any{
		"userId":   user.ID.String(),
		"username": user.Username,
	})

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login authenticates a user by username and password. Blocked emails are
// refused even with valid credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	userRepo := repository.NewUserRepository(s.db)

	user, err := userRepo.FindByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		s.audit.Warn(ctx, models.LogCategoryAuth, "Login failed - invalid credentials", map[string]any{
			"username": username,
		})
		return nil, &ServiceError{Code: ErrCodeInvalidCredentials, Message: "Invalid credentials"}
	}
	if err != nil {
		return nil, internalError("failed to find user: %v", err)
	}

	blocked, err := s.matcher.IsBlocked(ctx, Identity{Email: user.Email})
	if err != nil {
		return nil, internalError("failed to check blocklist: %v", err)
	}
	if blocked {
		s.audit.Warn(ctx, models.LogCategoryAuth, "Blocked user attempted login", map[string]any{
			"username": username,
		})
		return nil, &ServiceError{Code: ErrCodeBlocked, Message: "Account blocked"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.audit.Warn(ctx, models.LogCategoryAuth, "Login failed - wrong password", map[string]any{
			"username": username,
		})
		return nil, &ServiceError{Code: ErrCodeInvalidCredentials, Message: "Invalid credentials"}
	}

	token, err := s.tokens.IssueUserToken(user.ID)
	if err != nil {
		return nil, internalError("failed to issue token: %v", err)
	}

	s.audit.Info(ctx, models.LogCategoryAuth, "User logged in", map[string]any{
		"userId":   user.ID.String(),
		"username": username,
	})

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// CurrentUser returns the sanitized profile of the authenticated user
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	user, err := repository.NewUserRepository(s.db).FindByID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "user not found"}
	}
	if err != nil {
		return nil, internalError("failed to find user: %v", err)
	}

	public := user.Public()
	return &public, nil
}

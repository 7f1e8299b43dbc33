package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/config"
)

// UserClaims are the JWT claims carried by a user bearer token
type UserClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// AdminClaims are the JWT claims carried by an admin bearer token
type AdminClaims struct {
	AdminID uuid.UUID `json:"adminId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens for users and admins
type TokenManager struct {
	secret           []byte
	tokenExpiry      time.Duration
	adminTokenExpiry time.Duration
}

// NewTokenManager creates a TokenManager from auth configuration
func NewTokenManager(cfg *config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret:           []byte(cfg.JWTSecret),
		tokenExpiry:      cfg.TokenExpiry,
		adminTokenExpiry: cfg.AdminTokenExpiry,
	}
}

// IssueUserToken signs a token for the given user
func (tm *TokenManager) IssueUserToken(userID uuid.UUID) (string, error) {
	claims := UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.tokenExpiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign user token: %w", err)
	}
	return signed, nil
}

// IssueAdminToken signs a token for the given admin
func (tm *TokenManager) IssueAdminToken(adminID uuid.UUID) (string, error) {
	claims := AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.adminTokenExpiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// VerifyUserToken parses and validates a user bearer token
func (tm *TokenManager) VerifyUserToken(token string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := tm.verify(token, claims); err != nil {
		return nil, err
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token carries no user id")
	}
	return claims, nil
}

// VerifyAdminToken parses and validates an admin bearer token
func (tm *TokenManager) VerifyAdminToken(token string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := tm.verify(token, claims); err != nil {
		return nil, err
	}
	if claims.AdminID == uuid.Nil {
		return nil, fmt.Errorf("token carries no admin id")
	}
	return claims, nil
}

func (tm *TokenManager) verify(token string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack/internal/config"
)

func testTokenManager(expiry time.Duration) *TokenManager {
	return NewTokenManager(&config.AuthConfig{
		JWTSecret:        "test-secret",
		TokenExpiry:      expiry,
		AdminTokenExpiry: expiry,
	})
}

func TestTokenManager_UserTokenRoundTrip(t *testing.T) {
	tm := testTokenManager(time.Hour)
	userID := uuid.New()

	token, err := tm.IssueUserToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.VerifyUserToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenManager_AdminTokenRoundTrip(t *testing.T) {
	tm := testTokenManager(time.Hour)
	adminID := uuid.New()

	token, err := tm.IssueAdminToken(adminID)
	require.NoError(t, err)

	claims, err := tm.VerifyAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := testTokenManager(-time.Minute)

	token, err := tm.IssueUserToken(uuid.New())
	require.NoError(t, err)

	_, err = tm.VerifyUserToken(token)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := testTokenManager(time.Hour)
	other := NewTokenManager(&config.AuthConfig{
		JWTSecret:        "another-secret",
		TokenExpiry:      time.Hour,
		AdminTokenExpiry: time.Hour,
	})

	token, err := tm.IssueUserToken(uuid.New())
	require.NoError(t, err)

	_, err = other.VerifyUserToken(token)
	assert.Error(t, err)
}

func TestTokenManager_UserTokenIsNotAnAdminToken(t *testing.T) {
	tm := testTokenManager(time.Hour)

	token, err := tm.IssueUserToken(uuid.New())
	require.NoError(t, err)

	// A user token parses with the shared secret but carries no admin id.
	_, err = tm.VerifyAdminToken(token)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := testTokenManager(time.Hour)

	_, err := tm.VerifyUserToken("not-a-token")
	assert.Error(t, err)
}

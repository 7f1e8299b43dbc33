package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/fintrack/internal/audit"
	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/repository/mocks"
)

func TestAdminService_BlockUserValidation(t *testing.T) {
	mockLogs := mocks.NewMockLogRepository(t)
	recorder := audit.NewRecorder(mockLogs, discardLogger())
	service := NewAdminService(nil, testTokenManager(0), recorder)

	tests := []struct {
		name  string
		email string
	}{
		{"empty email", ""},
		{"whitespace email", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked, err := service.BlockUser(context.Background(), BlockUserInput{Email: tt.email}, "", "")

			assert.Error(t, err)
			assert.Nil(t, blocked)

			var svcErr *ServiceError
			if assert.ErrorAs(t, err, &svcErr) {
				assert.Equal(t, ErrCodeMissingFields, svcErr.Code)
			}
		})
	}
}

func TestAdminService_EnsureBootstrapAdminUnconfigured(t *testing.T) {
	mockLogs := mocks.NewMockLogRepository(t)
	recorder := audit.NewRecorder(mockLogs, discardLogger())
	service := NewAdminService(nil, testTokenManager(0), recorder)

	// No username configured means nothing to provision.
	err := service.EnsureBootstrapAdmin(context.Background(), &config.AdminConfig{})
	assert.NoError(t, err)
}

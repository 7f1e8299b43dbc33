package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := &ServiceError{Code: ErrCodeValidation, Message: "bad input"}
		assert.Equal(t, "bad input", err.Error())
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &ServiceError{Code: ErrCodeInternalError, Message: "failed", Err: cause}
		assert.Equal(t, "failed: boom", err.Error())
	})
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ServiceError{Code: ErrCodeInternalError, Message: "failed", Err: cause}

	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("handler: %w", err)
	var svcErr *ServiceError
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, ErrCodeInternalError, svcErr.Code)
}

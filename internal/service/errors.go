package service

import "fmt"

// ServiceError represents a business logic error with a code. Details, when
// set, is client-facing context such as the field a duplicate conflicts on.
type ServiceError struct {
	Err     error
	Message string
	Details string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeUserNotFound        = "user_not_found"
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeCardNotFound        = "card_not_found"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeBlockedNotFound     = "blocked_user_not_found"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeValidation          = "validation_failed"
	ErrCodeMissingFields       = "missing_fields"
	ErrCodeDuplicateUser       = "duplicate_user"
	ErrCodeAlreadyBlocked      = "already_blocked"
	ErrCodeInvalidCredentials  = "invalid_credentials"
	ErrCodeBlocked             = "blocked"
	ErrCodeInternalError       = "internal_error"
)

func internalError(format string, args ...any) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf(format, args...),
	}
}

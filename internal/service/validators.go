package service

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{4}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	emailPattern      = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)
)

// ValidateCardNumber checks the XXXX-XXXX-XXXX-XXXX card number format
func ValidateCardNumber(number string) error {
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("%q is not a valid card number: format must be XXXX-XXXX-XXXX-XXXX", number)
	}
	return nil
}

// ValidateCardExpiry checks the MM/YY expiry format
func ValidateCardExpiry(expiry string) error {
	if !cardExpiryPattern.MatchString(expiry) {
		return fmt.Errorf("%q is not a valid expiry date: format must be MM/YY", expiry)
	}
	return nil
}

// ValidateCardType checks that the card type is credit or debit
func ValidateCardType(cardType models.CardType) error {
	if cardType != models.CardTypeCredit && cardType != models.CardTypeDebit {
		return fmt.Errorf("card type must be credit or debit")
	}
	return nil
}

// ValidateAmount checks that a transaction amount is a positive number
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// ValidateEmail checks the email address format
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%q is not a valid email address", email)
	}
	return nil
}

// ValidateUsername checks the minimum username length
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	return nil
}

// ValidatePassword checks the minimum password length
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	return nil
}

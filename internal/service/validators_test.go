package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/fintrack/internal/models"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"valid", "4242-4242-4242-4242", false},
		{"no dashes", "4242424242424242", true},
		{"too short", "4242-4242-4242", true},
		{"letters", "4242-4242-4242-424a", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardNumber(tt.number)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCardExpiry(t *testing.T) {
	tests := []struct {
		name    string
		expiry  string
		wantErr bool
	}{
		{"valid january", "01/27", false},
		{"valid december", "12/30", false},
		{"month zero", "00/27", true},
		{"month thirteen", "13/27", true},
		{"four digit year", "01/2027", true},
		{"missing slash", "0127", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardExpiry(tt.expiry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCardType(t *testing.T) {
	assert.NoError(t, ValidateCardType(models.CardTypeCredit))
	assert.NoError(t, ValidateCardType(models.CardTypeDebit))
	assert.Error(t, ValidateCardType(models.CardType("prepaid")))
	assert.Error(t, ValidateCardType(models.CardType("")))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.RequireFromString("0.01")))
	assert.NoError(t, ValidateAmount(decimal.RequireFromString("1000")))
	assert.Error(t, ValidateAmount(decimal.Zero))
	assert.Error(t, ValidateAmount(decimal.RequireFromString("-1")))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"simple", "alice@example.com", false},
		{"dotted local part", "alice.smith@example.com", false},
		{"subdomain", "alice@mail.example.co", false},
		{"hyphenated", "a-b@ex-ample.org", false},
		{"missing at", "alice.example.com", true},
		{"missing tld", "alice@example", true},
		{"double dot local", "alice..smith@example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsernameAndPassword(t *testing.T) {
	assert.Error(t, ValidateUsername("ab"))
	assert.NoError(t, ValidateUsername("abc"))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

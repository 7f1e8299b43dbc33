package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a named balance bucket owned by exactly one user.
//
// Invariant: Balance equals the sum of the signed amounts of all live
// transactions referencing the account, rounded to 2 decimal places after
// every committed mutation.
type Account struct {
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
	Name      string          `json:"name" db:"name"`
	Type      string          `json:"type" db:"type"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"userId" db:"user_id"`
}

// CardType distinguishes credit and debit cards.
type CardType string

const (
	CardTypeCredit CardType = "credit"
	CardTypeDebit  CardType = "debit"
)

// Card is a payment instrument linked to one account. Cards have no effect
// on account balances.
type Card struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Number    string    `json:"number" db:"number"`
	Expiry    string    `json:"expiry" db:"expiry"`
	Type      CardType  `json:"type" db:"type"`
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	AccountID uuid.UUID `json:"accountId" db:"account_id"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger entry
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single ledger entry against an account
type Transaction struct {
	OccurredAt  time.Time       `json:"date" db:"occurred_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	Type        TransactionType `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"userId" db:"user_id"`
	AccountID   uuid.UUID       `json:"accountId" db:"account_id"`
}

// SignedAmount is the transaction's contribution to its account balance:
// +Amount for income, -Amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

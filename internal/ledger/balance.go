// Package ledger implements the balance invariant engine: the pure rules
// that keep an account balance equal to the rounded sum of the signed
// amounts of its live transactions.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/models"
)

// ErrInvalidAmount indicates a transaction amount that is not a positive
// finite number. The service layer validates amounts before calling the
// engine; the engine re-checks anyway so a bad caller cannot corrupt a
// balance.
var ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

// Round2 rounds a currency value to 2 decimal places, half away from zero.
// Rounding is applied after every single adjustment rather than only at
// display time, so floating drift can never accumulate across a long
// transaction history.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ApplyCreate returns the account balance after txn is added:
// Round2(balance + signedAmount).
func ApplyCreate(balance decimal.Decimal, txn *models.Transaction) (decimal.Decimal, error) {
	if err := validate(txn); err != nil {
		return decimal.Decimal{}, err
	}
	return Round2(balance.Add(txn.SignedAmount())), nil
}

// ApplyDelete returns the account balance after txn is removed:
// Round2(balance - signedAmount). It is the exact inverse of ApplyCreate
// for the same transaction, regardless of how many other transactions were
// created or deleted in between. The caller must supply the transaction
// exactly as stored; the engine never replays the full ledger.
func ApplyDelete(balance decimal.Decimal, txn *models.Transaction) (decimal.Decimal, error) {
	if err := validate(txn); err != nil {
		return decimal.Decimal{}, err
	}
	return Round2(balance.Sub(txn.SignedAmount())), nil
}

func validate(txn *models.Transaction) error {
	if !txn.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/ledger"
	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/repository"
)

// LedgerService orchestrates accounts, cards, and transactions for one
// authenticated user per call. Every mutation that touches a balance runs
// inside a single database transaction with the owning account row locked,
// so two concurrent mutations of the same account serialize instead of
// losing an update.
type LedgerService struct {
	db *db.DB
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(database *db.DB) *LedgerService {
	return &LedgerService{db: database}
}

// CreateTransactionInput carries a new ledger entry request
type CreateTransactionInput struct {
	Date        *time.Time             `json:"date"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	AccountID   uuid.UUID              `json:"accountId"`
}

// CreateAccountInput carries a new account request
type CreateAccountInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateAccountInput carries a partial account update; nil fields are left
// unchanged
type UpdateAccountInput struct {
	Name    *string          `json:"name"`
	Type    *string          `json:"type"`
	Balance *decimal.Decimal `json:"balance"`
}

// CreateCardInput carries a new card request
type CreateCardInput struct {
	AccountID uuid.UUID       `json:"accountId"`
	Type      models.CardType `json:"type"`
	Number    string          `json:"number"`
	Expiry    string          `json:"expiry"`
}

// ListAccounts returns the user's accounts
func (s *LedgerService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts, err := repository.NewAccountRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("failed to list accounts: %v", err)
	}
	return accounts, nil
}

// CreateAccount creates an account with a zero starting balance
func (s *LedgerService) CreateAccount(ctx context.Context, userID uuid.UUID, input CreateAccountInput) (*models.Account, error) {
	if input.Name == "" || input.Type == "" {
		return nil, &ServiceError{
			Code:    ErrCodeMissingFields,
			Message: "account name and type are required",
		}
	}

	account := &models.Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Type:      input.Type,
		Balance:   decimal.Zero,
		CreatedAt: time.Now(),
	}

	if err := repository.NewAccountRepository(s.db).Create(ctx, account); err != nil {
		return nil, internalError("failed to create account: %v", err)
	}

	return account, nil
}

// UpdateAccount applies a partial update to an account the user owns
func (s *LedgerService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, input UpdateAccountInput) (*models.Account, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, internalError("failed to start transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	accountRepo := repository.NewAccountRepository(tx)

	account, err := accountRepo.FindByIDForUpdate(ctx, userID, accountID)
	if err != nil {
		return nil, accountLookupError(err)
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Type != nil {
		account.Type = *input.Type
	}
	if input.Balance != nil {
		account.Balance = ledger.Round2(*input.Balance)
	}

	if err := accountRepo.Update(ctx, account); err != nil {
		return nil, internalError("failed to update account: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction: %v", err)
	}

	return account, nil
}

// DeleteAccount removes an account and everything referencing it. The
// cascade (cards, then transactions, then the account) commits as one unit;
// an interrupted delete leaves nothing orphaned.
func (s *LedgerService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	err = s.performAccountDelete(ctx,
		repository.NewAccountRepository(tx),
		repository.NewCardRepository(tx),
		repository.NewTransactionRepository(tx),
		userID, accountID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction: %v", err)
	}

	return nil
}

// performAccountDelete contains the cascade logic
func (s *LedgerService) performAccountDelete(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	cardRepo repository.CardRepository,
	txnRepo repository.TransactionRepository,
	userID, accountID uuid.UUID,
) error {
	if _, err := accountRepo.FindByIDForUpdate(ctx, userID, accountID); err != nil {
		return accountLookupError(err)
	}

	if err := cardRepo.DeleteByAccount(ctx, accountID); err != nil {
		return internalError("failed to delete cards: %v", err)
	}
	if err := txnRepo.DeleteByAccount(ctx, accountID); err != nil {
		return internalError("failed to delete transactions: %v", err)
	}
	if err := accountRepo.Delete(ctx, userID, accountID); err != nil {
		return internalError("failed to delete account: %v", err)
	}

	return nil
}

// ListCards returns the user's cards
func (s *LedgerService) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	cards, err := repository.NewCardRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("failed to list cards: %v", err)
	}
	return cards, nil
}

// CreateCard adds a card to an account the user owns. Cards never affect
// balances.
func (s *LedgerService) CreateCard(ctx context.Context, userID uuid.UUID, input CreateCardInput) (*models.Card, error) {
	if err := ValidateCardType(input.Type); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidateCardNumber(input.Number); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidateCardExpiry(input.Expiry); err != nil {
		return nil, &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}

	if _, err := repository.NewAccountRepository(s.db).FindByID(ctx, userID, input.AccountID); err != nil {
		return nil, accountLookupError(err)
	}

	card := &models.Card{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: input.AccountID,
		Type:      input.Type,
		Number:    input.Number,
		Expiry:    input.Expiry,
		CreatedAt: time.Now(),
	}

	if err := repository.NewCardRepository(s.db).Create(ctx, card); err != nil {
		return nil, internalError("failed to create card: %v", err)
	}

	return card, nil
}

// DeleteCard removes a card the user owns; no balance side effects
func (s *LedgerService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	err := repository.NewCardRepository(s.db).Delete(ctx, userID, cardID)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeCardNotFound, Message: "card not found"}
	}
	if err != nil {
		return internalError("failed to delete card: %v", err)
	}
	return nil
}

// ListTransactions returns the user's transactions, newest first
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	txns, err := repository.NewTransactionRepository(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("failed to list transactions: %v", err)
	}
	return txns, nil
}

// CreateTransaction records a ledger entry and adjusts the owning account's
// balance, both committed as one unit.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID uuid.UUID, input CreateTransactionInput) (*models.Transaction, error) {
	if !input.Type.Valid() {
		return nil, &ServiceError{
			Code:    ErrCodeValidation,
			Message: "transaction type must be income or expense",
		}
	}
	if input.Category == "" {
		return nil, &ServiceError{
			Code:    ErrCodeMissingFields,
			Message: "category is required",
		}
	}
	if err := ValidateAmount(input.Amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, internalError("failed to start transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txn, err := s.performTransactionCreate(ctx,
		repository.NewAccountRepository(tx),
		repository.NewTransactionRepository(tx),
		userID, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, internalError("failed to commit transaction: %v", err)
	}

	return txn, nil
}

// performTransactionCreate contains the core create logic: lock the owning
// account, compute the new balance via the invariant engine, persist entry
// and balance together.
func (s *LedgerService) performTransactionCreate(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	userID uuid.UUID,
	input CreateTransactionInput,
) (*models.Transaction, error) {
	account, err := accountRepo.FindByIDForUpdate(ctx, userID, input.AccountID)
	if err != nil {
		return nil, accountLookupError(err)
	}

	occurredAt := time.Now()
	if input.Date != nil {
		occurredAt = *input.Date
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   account.ID,
		Type:        input.Type,
		Amount:      ledger.Round2(input.Amount),
		Category:    input.Category,
		Description: input.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now(),
	}

	newBalance, err := ledger.ApplyCreate(account.Balance, txn)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	if err := txnRepo.Create(ctx, txn); err != nil {
		return nil, internalError("failed to create transaction: %v", err)
	}
	if err := accountRepo.SetBalance(ctx, account.ID, newBalance); err != nil {
		return nil, internalError("failed to adjust balance: %v", err)
	}

	return txn, nil
}

// DeleteTransaction removes a ledger entry and reverses its contribution to
// the owning account's balance, both committed as one unit.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, txnID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return internalError("failed to start transaction: %v", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	err = s.performTransactionDelete(ctx,
		repository.NewAccountRepository(tx),
		repository.NewTransactionRepository(tx),
		userID, txnID)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return internalError("failed to commit transaction: %v", err)
	}

	return nil
}

// performTransactionDelete contains the core delete logic. A transaction
// whose account no longer exists is still deleted; only the balance
// adjustment is skipped.
func (s *LedgerService) performTransactionDelete(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	userID, txnID uuid.UUID,
) error {
	txn, err := txnRepo.FindByID(ctx, userID, txnID)
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeTransactionNotFound, Message: "transaction not found"}
	}
	if err != nil {
		return internalError("failed to find transaction: %v", err)
	}

	account, err := accountRepo.FindByIDForUpdate(ctx, userID, txn.AccountID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		// Orphaned entry: nothing to adjust.
	case err != nil:
		return internalError("failed to find account: %v", err)
	default:
		newBalance, err := ledger.ApplyDelete(account.Balance, txn)
		if err != nil {
			return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
		}
		if err := accountRepo.SetBalance(ctx, account.ID, newBalance); err != nil {
			return internalError("failed to adjust balance: %v", err)
		}
	}

	if err := txnRepo.Delete(ctx, userID, txnID); err != nil {
		return internalError("failed to delete transaction: %v", err)
	}

	return nil
}

func accountLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: ErrCodeAccountNotFound, Message: "account not found"}
	}
	return internalError("failed to find account: %v", err)
}

package service

import (
	"context"

	"github.com/budget-api/account-ledger-service/internal/domain/entity"
	"github.com/budget-api/account-ledger-service/internal/domain/repository"
)

// LedgerService handles business logic for accounts and their transactions.
// Each operation issues at most one read-then-write against a single account
// document; there is no cross-request coordination, so concurrent writers to
// the same account may race (last save wins).
type LedgerService struct {
	repo repository.AccountRepository

	// reverseOnDelete makes RemoveTransaction subtract the removed amount
	// from the balance. Off by default: the stock behavior only splices the
	// sequence and leaves the balance as-is.
	reverseOnDelete bool
}

// NewLedgerService creates a new ledger service
func NewLedgerService(repo repository.AccountRepository, reverseOnDelete bool) *LedgerService {
	return &LedgerService{repo: repo, reverseOnDelete: reverseOnDelete}
}

// CreateAccount creates and stores a new account with an empty transaction
// list. Returns entity.ErrAccountExists if the user is already taken.
func (s *LedgerService) CreateAccount(ctx context.Context, user, currency, description string, balance float64) (*entity.Account, error) {
	account := entity.NewAccount(user, currency, description, balance)

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account with its transactions in stored order
func (s *LedgerService) GetAccount(ctx context.Context, user string) (*entity.Account, error) {
	return s.repo.FindByUser(ctx, user)
}

// DeleteAccount removes an account and all its embedded transactions
func (s *LedgerService) DeleteAccount(ctx context.Context, user string) error {
	return s.repo.Delete(ctx, user)
}

// AddTransaction appends a transaction to the user's account and applies its
// amount to the balance, persisting both in a single document update. The
// transaction id is derived from (date, object, rawAmount); resubmitting the
// same logical transaction yields entity.ErrTransactionExists.
func (s *LedgerService) AddTransaction(ctx context.Context, user, date, object, rawAmount string, amount float64) (*entity.Transaction, error) {
	account, err := s.repo.FindByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(date, object, rawAmount, amount)
	if account.FindTransaction(tx.ID) >= 0 {
		return nil, entity.ErrTransactionExists
	}

	account.AddTransaction(tx)

	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	return &tx, nil
}

// RemoveTransaction removes the transaction with the given id from the
// user's account. The balance is only adjusted when the service was built
// with reverseOnDelete.
func (s *LedgerService) RemoveTransaction(ctx context.Context, user, id string) error {
	account, err := s.repo.FindByUser(ctx, user)
	if err != nil {
		return err
	}

	i := account.FindTransaction(id)
	if i < 0 {
		return entity.ErrTransactionNotFound
	}

	removed := account.RemoveTransactionAt(i)
	if s.reverseOnDelete {
		account.Balance -= removed.Amount
	}

	return s.repo.Save(ctx, account)
}

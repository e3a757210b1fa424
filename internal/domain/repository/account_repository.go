package repository

import (
	"context"

	"github.com/budget-api/account-ledger-service/internal/domain/entity"
)

// AccountRepository defines the interface for account storage. Each account
// is one document embedding its transaction list; implementations guarantee
// atomicity per document only.
type AccountRepository interface {
	// FindByUser retrieves the account for a user, including its full
	// transaction list in stored order. Returns entity.ErrAccountNotFound
	// if no account exists.
	FindByUser(ctx context.Context, user string) (*entity.Account, error)

	// Create persists a new account, assigning its internal ID. Returns
	// entity.ErrAccountExists if an account for the user is already stored.
	Create(ctx context.Context, account *entity.Account) error

	// Save overwrites the stored document for an existing account.
	Save(ctx context.Context, account *entity.Account) error

	// Delete removes an account and its embedded transactions. Returns
	// entity.ErrAccountNotFound if no account exists.
	Delete(ctx context.Context, user string) error
}

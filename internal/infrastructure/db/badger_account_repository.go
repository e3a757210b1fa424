package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/budget-api/account-ledger-service/internal/domain/entity"
	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
)

const accountKeyPrefix = "account:"

// BadgerAccountRepository implements the account repository interface using
// BadgerDB. Each account is stored as a single JSON document under
// "account:<user>", so every write touches exactly one key and is atomic at
// account granularity.
type BadgerAccountRepository struct {
	db *badger.DB
}

// NewBadgerAccountRepository creates a new BadgerDB account repository
func NewBadgerAccountRepository(db *badger.DB) *BadgerAccountRepository {
	return &BadgerAccountRepository{db: db}
}

func accountKey(user string) []byte {
	return []byte(accountKeyPrefix + user)
}

// FindByUser retrieves an account document by its user key
func (r *BadgerAccountRepository) FindByUser(ctx context.Context, user string) (*entity.Account, error) {
	var account entity.Account

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(user))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &account)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, entity.ErrAccountNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account: %w", err)
	}

	return &account, nil
}

// Create stores a new account document, assigning its internal ID. The
// existence check and the write happen in one Badger transaction, so two
// concurrent creations for the same user cannot both succeed.
func (r *BadgerAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(accountKey(account.User))
		if err == nil {
			return entity.ErrAccountExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		return txn.Set(accountKey(account.User), data)
	})

	if errors.Is(err, entity.ErrAccountExists) {
		return err
	}

	if err != nil {
		return fmt.Errorf("failed to store account: %w", err)
	}

	return nil
}

// Save overwrites the stored document for an account
func (r *BadgerAccountRepository) Save(ctx context.Context, account *entity.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(accountKey(account.User), data)
	})

	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// Delete removes an account document and, with it, all embedded transactions
func (r *BadgerAccountRepository) Delete(ctx context.Context, user string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(accountKey(user))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return entity.ErrAccountNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(accountKey(user))
	})

	if errors.Is(err, entity.ErrAccountNotFound) {
		return err
	}

	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

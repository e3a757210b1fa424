package entity

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; everything else
// surfaces as an internal error.
var (
	// ErrAccountNotFound indicates no account exists for the requested user.
	ErrAccountNotFound = errors.New("user does not exist")

	// ErrAccountExists indicates an account creation hit a duplicate user.
	ErrAccountExists = errors.New("user already exists")

	// ErrTransactionNotFound indicates the account has no transaction with
	// the requested id.
	ErrTransactionNotFound = errors.New("transaction does not exist")

	// ErrTransactionExists indicates a transaction with the same derived id
	// is already present on the account.
	ErrTransactionExists = errors.New("transaction already exists")
)

package entity

import (
	"crypto/md5"
	"encoding/hex"
)

// Transaction represents a single dated, labeled, signed monetary entry on
// an account. A positive amount is a credit, a negative amount a debit.
type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Object string  `json:"object"`
	Amount float64 `json:"amount"`
}

// DeriveTransactionID computes the content-hash identifier of a transaction:
// the MD5 hex digest of date, object, and the amount exactly as the client
// submitted it (before numeric coercion). Identical (date, object, amount)
// tuples collide, which is what makes the id a duplicate-submission guard.
// This is a dedup key, not a security boundary.
func DeriveTransactionID(date, object, rawAmount string) string {
	sum := md5.Sum([]byte(date + object + rawAmount))
	return hex.EncodeToString(sum[:])
}

// NewTransaction builds a transaction with its derived id. rawAmount is the
// amount as submitted; amount is its coerced numeric value.
func NewTransaction(date, object, rawAmount string, amount float64) Transaction {
	return Transaction{
		ID:     DeriveTransactionID(date, object, rawAmount),
		Date:   date,
		Object: object,
		Amount: amount,
	}
}

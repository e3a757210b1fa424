package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTransactionID(t *testing.T) {
	// Known digests of date+object+amount concatenation
	assert.Equal(t, "327265b7af7a1a28b161a884512293b9",
		DeriveTransactionID("2020-10-01", "Pocket money", "50"))
	assert.Equal(t, "0bf8868671c42ad3e049c08b115c852e",
		DeriveTransactionID("2020-10-03", "Book", "-10"))

	// Deterministic: same tuple, same id
	assert.Equal(t,
		DeriveTransactionID("2021-01-01", "Gift", "20"),
		DeriveTransactionID("2021-01-01", "Gift", "20"))

	// The raw form matters: "50" and "50.0" coerce to the same number but
	// produce different ids
	assert.NotEqual(t,
		DeriveTransactionID("2020-10-01", "Pocket money", "50"),
		DeriveTransactionID("2020-10-01", "Pocket money", "50.0"))
}

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction("2020-10-01", "Pocket money", "50", 50)

	assert.Equal(t, "327265b7af7a1a28b161a884512293b9", tx.ID)
	assert.Equal(t, "2020-10-01", tx.Date)
	assert.Equal(t, "Pocket money", tx.Object)
	assert.Equal(t, 50.0, tx.Amount)
}

func TestNewAccountDefaults(t *testing.T) {
	account := NewAccount("alice", "$", "", 0)

	assert.Equal(t, "alice", account.User)
	assert.Equal(t, "$", account.Currency)
	assert.Equal(t, "alice's budget", account.Description)
	assert.Equal(t, 0.0, account.Balance)
	assert.NotNil(t, account.Transactions)
	assert.Empty(t, account.Transactions)

	// Explicit description is kept
	account = NewAccount("bob", "€", "Travel fund", 100)
	assert.Equal(t, "Travel fund", account.Description)
	assert.Equal(t, 100.0, account.Balance)
}

func TestAccountTransactions(t *testing.T) {
	account := NewAccount("alice", "$", "", 100)

	account.AddTransaction(NewTransaction("2021-01-01", "Gift", "20", 20))
	account.AddTransaction(NewTransaction("2021-01-02", "Coffee", "-4", -4))

	assert.Equal(t, 116.0, account.Balance)
	assert.Len(t, account.Transactions, 2)
	assert.Equal(t, "Gift", account.Transactions[0].Object)
	assert.Equal(t, "Coffee", account.Transactions[1].Object)

	// Lookup by id
	giftID := account.Transactions[0].ID
	assert.Equal(t, 0, account.FindTransaction(giftID))
	assert.Equal(t, -1, account.FindTransaction("no-such-id"))

	// Removal splices the sequence but does not touch the balance
	removed := account.RemoveTransactionAt(0)
	assert.Equal(t, giftID, removed.ID)
	assert.Len(t, account.Transactions, 1)
	assert.Equal(t, "Coffee", account.Transactions[0].Object)
	assert.Equal(t, 116.0, account.Balance)
}

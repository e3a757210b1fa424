package entity

// Account represents a user's ledger: a currency label, a running balance,
// and the ordered list of transactions applied to it. Each account is
// persisted as a single document keyed by user.
type Account struct {
	ID           string        `json:"_id"`
	User         string        `json:"user"`
	Currency     string        `json:"currency"`
	Description  string        `json:"description"`
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

// NewAccount creates an account with an empty transaction list. When no
// description is given it defaults to "<user>'s budget".
func NewAccount(user, currency, description string, balance float64) *Account {
	if description == "" {
		description = user + "'s budget"
	}

	return &Account{
		User:         user,
		Currency:     currency,
		Description:  description,
		Balance:      balance,
		Transactions: make([]Transaction, 0),
	}
}

// FindTransaction returns the index of the transaction with the given id,
// or -1 if the account has no such transaction.
func (a *Account) FindTransaction(id string) int {
	for i := range a.Transactions {
		if a.Transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTransaction appends tx to the account's sequence and applies its amount
// to the balance. Insertion order is significant and preserved.
func (a *Account) AddTransaction(tx Transaction) {
	a.Transactions = append(a.Transactions, tx)
	a.Balance += tx.Amount
}

// RemoveTransactionAt removes the transaction at index i, keeping the order
// of the remaining entries. The balance is left untouched; callers that want
// the removed amount reversed must do so explicitly.
func (a *Account) RemoveTransactionAt(i int) Transaction {
	removed := a.Transactions[i]
	a.Transactions = append(a.Transactions[:i], a.Transactions[i+1:]...)
	return removed
}

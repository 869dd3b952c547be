package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBalance        int64 = 1000
	DefaultOverdraftLimit int64 = -1000
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Account is a uniquely identified balance holder with a bounded overdraft
// and an append-only transaction history. The account number is assigned at
// creation and never changes; the history slice is allocated per account,
// never shared.
type Account struct {
	Nickname  string
	number    uuid.UUID
	balance   int64
	overdraft int64
	history   []Transaction
}

func newAccount(nickname string) *Account {
	return &Account{
		Nickname:  nickname,
		number:    uuid.New(),
		balance:   DefaultBalance,
		overdraft: DefaultOverdraftLimit,
		history:   make([]Transaction, 0),
	}
}

// Number returns the account's immutable public address.
func (a *Account) Number() uuid.UUID { return a.number }

func (a *Account) Balance() int64 { return a.balance }

// OverdraftLimit is the lowest value the balance may reach through Debit.
func (a *Account) OverdraftLimit() int64 { return a.overdraft }

// Transactions returns a copy of the account's history in insertion order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)

	return out
}

// Credit increases the balance unconditionally. There is no overdraft check
// on this path: a negative amount sinks the balance without a floor, and
// sign validation is the caller's responsibility.
func (a *Account) Credit(amount int64) {
	a.balance += amount
}

// Debit decreases the balance by amount. It fails with ErrInsufficientFunds
// when the result would breach the overdraft limit, leaving the balance
// untouched.
func (a *Account) Debit(amount int64) error {
	if a.balance-amount < a.overdraft {
		return ErrInsufficientFunds
	}

	a.balance -= amount

	return nil
}

// Transfer moves amount from a to the recipient, recording one signed leg
// on each side. The debit is the single failure point: if it fails, neither
// account's balance or history changes.
func (a *Account) Transfer(to *Account, amount int64) error {
	if err := a.Debit(amount); err != nil {
		return err
	}

	now := timeNow()
	a.history = append(a.history, NewTransaction(
		to.number, -amount, now,
		fmt.Sprintf("transfer (debit) of %d to %s", amount, to.number),
	))
	to.history = append(to.history, NewTransaction(
		to.number, amount, now,
		fmt.Sprintf("transfer (credit) of %d from %s", amount, a.number),
	))
	to.Credit(amount)

	return nil
}

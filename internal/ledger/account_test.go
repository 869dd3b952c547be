package ledger_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoodham/bucksbot/internal/ledger"
)

func TestNewTransaction(t *testing.T) {
	recipient := uuid.New()
	ts := time.Date(2024, 3, 1, 12, 30, 45, 987654321, time.UTC)

	tx := ledger.NewTransaction(recipient, 250, ts, "rent")

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, recipient, tx.Recipient)
	assert.Equal(t, int64(250), tx.Amount)
	assert.Equal(t, "rent", tx.Memo)
	// second resolution
	assert.Equal(t, ts.Truncate(time.Second), tx.Timestamp)

	other := ledger.NewTransaction(recipient, 250, ts, "rent")
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestNewTransaction_DefaultMemo(t *testing.T) {
	recipient := uuid.New()

	tx := ledger.NewTransaction(recipient, -42, time.Now(), "")

	assert.Equal(t, fmt.Sprintf("-42 to %s", recipient), tx.Memo)
}

func TestAccount_Defaults(t *testing.T) {
	l := ledger.New()

	a, err := l.Create("alice", "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", a.Nickname)
	assert.NotEqual(t, uuid.Nil, a.Number())
	assert.Equal(t, ledger.DefaultBalance, a.Balance())
	assert.Equal(t, ledger.DefaultOverdraftLimit, a.OverdraftLimit())
	assert.Empty(t, a.Transactions())
}

func TestAccount_DebitCreditInverse(t *testing.T) {
	l := ledger.New()
	a, _ := l.Create("alice", "alice")

	before := a.Balance()

	require.NoError(t, a.Debit(300))
	a.Credit(300)

	assert.Equal(t, before, a.Balance())
}

func TestAccount_DebitOverdraftBoundary(t *testing.T) {
	l := ledger.New()
	a, _ := l.Create("alice", "alice")

	// 1000 - 2000 == -1000 lands exactly on the limit
	require.NoError(t, a.Debit(2000))
	assert.Equal(t, int64(-1000), a.Balance())

	err := a.Debit(1)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Equal(t, int64(-1000), a.Balance())
}

func TestAccount_CreditIsUnguarded(t *testing.T) {
	l := ledger.New()
	bob, _ := l.Create("bob", "bob")

	// a negative credit sinks the balance below the overdraft limit with
	// no error: this path has no floor
	bob.Credit(-1500)

	assert.Equal(t, int64(-500), bob.Balance())
	assert.Less(t, bob.Balance(), bob.OverdraftLimit())
}

func TestAccount_Transfer(t *testing.T) {
	l := ledger.New()
	alice, _ := l.Create("alice", "alice")
	bob, _ := l.Create("bob", "bob")

	require.NoError(t, alice.Transfer(bob, 500))

	assert.Equal(t, int64(500), alice.Balance())
	assert.Equal(t, int64(1500), bob.Balance())

	aliceTxs := alice.Transactions()
	bobTxs := bob.Transactions()
	require.Len(t, aliceTxs, 1)
	require.Len(t, bobTxs, 1)

	// one signed leg on each side, both referencing the recipient wallet
	assert.Equal(t, int64(-500), aliceTxs[0].Amount)
	assert.Equal(t, int64(500), bobTxs[0].Amount)
	assert.Equal(t, bob.Number(), aliceTxs[0].Recipient)
	assert.Equal(t, bob.Number(), bobTxs[0].Recipient)
	assert.NotEqual(t, aliceTxs[0].ID, bobTxs[0].ID)
	assert.Contains(t, aliceTxs[0].Memo, "debit")
	assert.Contains(t, bobTxs[0].Memo, "credit")
}

func TestAccount_TransferInsufficientFundsIsAtomic(t *testing.T) {
	l := ledger.New()
	alice, _ := l.Create("alice", "alice")
	bob, _ := l.Create("bob", "bob")

	require.NoError(t, alice.Debit(500)) // balance 500

	err := alice.Transfer(bob, 2000)
	require.True(t, errors.Is(err, ledger.ErrInsufficientFunds))

	assert.Equal(t, int64(500), alice.Balance())
	assert.Equal(t, int64(1000), bob.Balance())
	assert.Empty(t, alice.Transactions())
	assert.Empty(t, bob.Transactions())
}

func TestAccount_HistoriesAreIndependent(t *testing.T) {
	l := ledger.New()
	alice, _ := l.Create("alice", "alice")
	bob, _ := l.Create("bob", "bob")
	carol, _ := l.Create("carol", "carol")

	require.NoError(t, alice.Transfer(bob, 10))

	assert.Len(t, alice.Transactions(), 1)
	assert.Len(t, bob.Transactions(), 1)
	assert.Empty(t, carol.Transactions())
}

func TestAccount_TransactionsReturnsCopy(t *testing.T) {
	l := ledger.New()
	alice, _ := l.Create("alice", "alice")
	bob, _ := l.Create("bob", "bob")

	require.NoError(t, alice.Transfer(bob, 10))

	txs := alice.Transactions()
	txs[0].Amount = 999999

	assert.Equal(t, int64(-10), alice.Transactions()[0].Amount)
}

package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jwoodham/bucksbot/internal/ledger"
	"github.com/jwoodham/bucksbot/internal/snapshot"
)

func newTestService(t *testing.T) (*Service, *MockStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	return NewService(ledger.New(), store), store
}

func TestService_CreateAccount(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	info, err := svc.CreateAccount("alice", "Alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", info.Identity)
	assert.Equal(t, "Alice", info.Nickname)
	assert.Equal(t, ledger.DefaultBalance, info.Balance)
	assert.Equal(t, ledger.DefaultOverdraftLimit, info.OverdraftLimit)
	assert.True(t, svc.Exists("alice"))
	assert.Equal(t, 1, svc.AccountCount())

	// the duplicate fails without another save
	_, err = svc.CreateAccount("alice", "Alice")
	assert.ErrorIs(t, err, ledger.ErrAccountExists)
}

func TestService_CreateAccountSurvivesSaveFailure(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	// in-memory state is authoritative, a failed save is not an error here
	info, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultBalance, info.Balance)
	assert.True(t, svc.Exists("alice"))
}

func TestService_Transfer(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount("bob", "bob")
	require.NoError(t, err)

	receipt, err := svc.Transfer("alice", "bob", 500)
	require.NoError(t, err)

	assert.Equal(t, int64(500), receipt.Amount)
	assert.Equal(t, int64(500), receipt.From.Balance)
	assert.Equal(t, int64(1500), receipt.To.Balance)
	assert.Equal(t, "alice", receipt.From.Identity)
	assert.Equal(t, "bob", receipt.To.Identity)
}

func TestService_TransferInvalidAmount(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount("bob", "bob")
	require.NoError(t, err)

	for _, amount := range []int64{0, -5} {
		_, err := svc.Transfer("alice", "bob", amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestService_TransferUnknownAccounts(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)

	_, err = svc.Transfer("alice", "ghost", 10)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	_, err = svc.Transfer("ghost", "alice", 10)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestService_TransferInsufficientFundsDoesNotSave(t *testing.T) {
	svc, store := newTestService(t)

	// exactly two saves: one per account creation, none for the failed move
	store.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount("bob", "bob")
	require.NoError(t, err)

	_, err = svc.Transfer("alice", "bob", 5000)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	alice, err := svc.Account("alice")
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultBalance, alice.Balance)
}

func TestService_IssueIsUnguarded(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	_, err := svc.CreateAccount("bob", "bob")
	require.NoError(t, err)

	info, err := svc.Issue("bob", 250)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), info.Balance)

	// negative issue drives the balance past the overdraft limit
	info, err = svc.Issue("bob", -5000)
	require.NoError(t, err)
	assert.Equal(t, int64(-3750), info.Balance)

	_, err = svc.Issue("ghost", 1)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestService_HistoryAndLeaderboard(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount("bob", "bob")
	require.NoError(t, err)

	_, err = svc.Transfer("alice", "bob", 300)
	require.NoError(t, err)

	history, err := svc.History("alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(-300), history[0].Amount)

	_, err = svc.History("ghost")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	board := svc.Leaderboard(10)
	require.Len(t, board, 2)
	assert.Equal(t, "bob", board[0].Nickname)
	assert.Equal(t, int64(1300), board[0].Balance)
	assert.Equal(t, "alice", board[1].Nickname)
	assert.Equal(t, int64(700), board[1].Balance)

	all := svc.AllTransactions()
	require.Len(t, all, 2)
}

func TestService_Save(t *testing.T) {
	svc, store := newTestService(t)

	var saved snapshot.Document
	store.EXPECT().Save(gomock.Any()).DoAndReturn(func(doc snapshot.Document) error {
		saved = doc
		return nil
	}).Times(2)

	_, err := svc.CreateAccount("alice", "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Save())
	require.Contains(t, saved, "alice")
	assert.Equal(t, int64(1000), saved["alice"].Balance)
}

func TestService_SaveError(t *testing.T) {
	svc, store := newTestService(t)
	store.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	assert.Error(t, svc.Save())
}

// Package bank wraps the single-writer ledger with the serialization and
// persistence policy the core leaves to its embedding: one mutex around
// every operation and a snapshot save after each successful mutation.
package bank

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jwoodham/bucksbot/internal/ledger"
	"github.com/jwoodham/bucksbot/internal/metrics"
	"github.com/jwoodham/bucksbot/internal/snapshot"
)

// ErrInvalidAmount rejects non-positive transfer amounts before they reach
// the ledger, which does not range-check signs itself.
var ErrInvalidAmount = errors.New("amount must be positive")

//go:generate mockgen -source=service.go -destination=store_mock.go -package=bank
type Store interface {
	Save(snapshot.Document) error
}

type Service struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	store  Store
}

func NewService(l *ledger.Ledger, store Store) *Service {
	return &Service{ledger: l, store: store}
}

// AccountInfo is a value view of an account. The ledger keeps exclusive
// ownership of the accounts themselves; nothing mutable leaves the service.
type AccountInfo struct {
	Identity       string
	Nickname       string
	Number         uuid.UUID
	Balance        int64
	OverdraftLimit int64
}

func infoFor(identity string, a *ledger.Account) AccountInfo {
	return AccountInfo{
		Identity:       identity,
		Nickname:       a.Nickname,
		Number:         a.Number(),
		Balance:        a.Balance(),
		OverdraftLimit: a.OverdraftLimit(),
	}
}

func (s *Service) CreateAccount(identity, nickname string) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ledger.Create(identity, nickname)
	if err != nil {
		return AccountInfo{}, err
	}

	metrics.AccountsCreated.Inc()
	s.persist()

	return infoFor(identity, a), nil
}

func (s *Service) Exists(identity string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Exists(identity)
}

func (s *Service) Account(identity string) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ledger.Get(identity)
	if err != nil {
		return AccountInfo{}, err
	}

	return infoFor(identity, a), nil
}

// TransferReceipt describes a completed transfer; balances are the values
// after the movement.
type TransferReceipt struct {
	From   AccountInfo
	To     AccountInfo
	Amount int64
}

// Transfer moves amount between two identities. Amount positivity is
// enforced here, not in the ledger.
func (s *Service) Transfer(from, to string, amount int64) (TransferReceipt, error) {
	if amount <= 0 {
		return TransferReceipt{}, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.ledger.Get(from)
	if err != nil {
		return TransferReceipt{}, err
	}

	dst, err := s.ledger.Get(to)
	if err != nil {
		return TransferReceipt{}, err
	}

	if err := src.Transfer(dst, amount); err != nil {
		metrics.TransfersFailed.Inc()
		return TransferReceipt{}, err
	}

	metrics.TransfersTotal.Inc()
	s.persist()

	return TransferReceipt{
		From:   infoFor(from, src),
		To:     infoFor(to, dst),
		Amount: amount,
	}, nil
}

// Issue credits an account without any overdraft check, matching the
// unguarded semantics of the moderator path: a negative amount debits the
// account with no floor.
func (s *Service) Issue(identity string, amount int64) (AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ledger.Get(identity)
	if err != nil {
		return AccountInfo{}, err
	}

	a.Credit(amount)

	metrics.IssuesTotal.Inc()
	s.persist()

	return infoFor(identity, a), nil
}

func (s *Service) History(identity string) ([]ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ledger.Get(identity)
	if err != nil {
		return nil, err
	}

	return a.Transactions(), nil
}

func (s *Service) AllTransactions() [][]ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.AllTransactions()
}

// LeaderboardEntry is one row of the top-balances board.
type LeaderboardEntry struct {
	Nickname string
	Number   uuid.UUID
	Balance  int64
}

func (s *Service) Leaderboard(n int) []LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	top := s.ledger.TopBalances(n)

	entries := make([]LeaderboardEntry, len(top))
	for i, a := range top {
		entries[i] = LeaderboardEntry{
			Nickname: a.Nickname,
			Number:   a.Number(),
			Balance:  a.Balance(),
		}
	}

	return entries
}

func (s *Service) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Len()
}

// Save writes an explicit snapshot checkpoint, used by the periodic saver
// and on shutdown.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(s.ledger.Snapshot()); err != nil {
		metrics.SnapshotFailures.Inc()
		return err
	}

	metrics.SnapshotSaves.Inc()

	return nil
}

// persist snapshots after a mutation. The in-memory state is authoritative:
// a failed write is logged and counted, and the periodic saver retries.
func (s *Service) persist() {
	if err := s.store.Save(s.ledger.Snapshot()); err != nil {
		metrics.SnapshotFailures.Inc()
		slog.Error("snapshot save failed", "error", err)

		return
	}

	metrics.SnapshotSaves.Inc()
}

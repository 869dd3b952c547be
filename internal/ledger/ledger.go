package ledger

import "sort"

// Ledger is the sole owner of all accounts, keyed by an external identity
// string. It is a single-writer structure with no internal locking: callers
// must serialize mutating operations.
type Ledger struct {
	accounts map[string]*Account
}

func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Create inserts a fresh account for identity with the default balance and
// overdraft limit and an empty history. It fails with ErrAccountExists when
// the key is already taken; the surviving account is the original one.
func (l *Ledger) Create(identity, nickname string) (*Account, error) {
	if _, ok := l.accounts[identity]; ok {
		return nil, ErrAccountExists
	}

	a := newAccount(nickname)
	l.accounts[identity] = a

	return a, nil
}

func (l *Ledger) Exists(identity string) bool {
	_, ok := l.accounts[identity]
	return ok
}

func (l *Ledger) Get(identity string) (*Account, error) {
	a, ok := l.accounts[identity]
	if !ok {
		return nil, ErrAccountNotFound
	}

	return a, nil
}

func (l *Ledger) Len() int { return len(l.accounts) }

// identities returns the ledger keys in sorted order, the stable iteration
// order used by AllTransactions, TopBalances and the snapshot.
func (l *Ledger) identities() []string {
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// AllTransactions returns each account's full history, one slice per
// account, in sorted-identity order. This is a structural dump, not a
// merged chronological log.
func (l *Ledger) AllTransactions() [][]Transaction {
	out := make([][]Transaction, 0, len(l.accounts))
	for _, id := range l.identities() {
		out = append(out, l.accounts[id].Transactions())
	}

	return out
}

// TopBalances returns the n accounts with the highest balance, descending,
// ties kept in sorted-identity order. When fewer than n accounts exist, all
// of them are returned; n below zero is treated as zero.
func (l *Ledger) TopBalances(n int) []*Account {
	ids := l.identities()

	accts := make([]*Account, 0, len(ids))
	for _, id := range ids {
		accts = append(accts, l.accounts[id])
	}

	sort.SliceStable(accts, func(i, j int) bool {
		return accts[i].balance > accts[j].balance
	})

	if n < 0 {
		n = 0
	}
	if n > len(accts) {
		n = len(accts)
	}

	return accts[:n]
}

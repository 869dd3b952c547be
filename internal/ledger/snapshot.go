package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwoodham/bucksbot/internal/snapshot"
)

// Snapshot dumps the whole ledger into the wire document: one record per
// identity, transaction timestamps as unix seconds.
func (l *Ledger) Snapshot() snapshot.Document {
	doc := make(snapshot.Document, len(l.accounts))

	for id, a := range l.accounts {
		txs := make([]snapshot.Transaction, len(a.history))
		for i, t := range a.history {
			txs[i] = snapshot.Transaction{
				Timestamp:     t.Timestamp.Unix(),
				Recipient:     t.Recipient.String(),
				Amount:        t.Amount,
				Memo:          t.Memo,
				TransactionID: t.ID.String(),
			}
		}

		doc[id] = snapshot.Account{
			Nickname:       a.Nickname,
			AccountNumber:  a.number.String(),
			Balance:        a.balance,
			OverdraftLimit: a.overdraft,
			Transactions:   txs,
		}
	}

	return doc
}

// FromSnapshot rebuilds a ledger from a wire document, preserving account
// numbers, transaction ids and history order. Identifiers that do not parse
// are reported as snapshot.ErrMalformed.
func FromSnapshot(doc snapshot.Document) (*Ledger, error) {
	l := New()

	for id, rec := range doc {
		number, err := uuid.Parse(rec.AccountNumber)
		if err != nil {
			return nil, fmt.Errorf("account %q: number %q: %w", id, rec.AccountNumber, snapshot.ErrMalformed)
		}

		a := &Account{
			Nickname:  rec.Nickname,
			number:    number,
			balance:   rec.Balance,
			overdraft: rec.OverdraftLimit,
			history:   make([]Transaction, 0, len(rec.Transactions)),
		}

		for _, t := range rec.Transactions {
			txID, err := uuid.Parse(t.TransactionID)
			if err != nil {
				return nil, fmt.Errorf("account %q: transaction id %q: %w", id, t.TransactionID, snapshot.ErrMalformed)
			}

			recipient, err := uuid.Parse(t.Recipient)
			if err != nil {
				return nil, fmt.Errorf("account %q: recipient %q: %w", id, t.Recipient, snapshot.ErrMalformed)
			}

			a.history = append(a.history, Transaction{
				ID:        txID,
				Recipient: recipient,
				Amount:    t.Amount,
				Timestamp: time.Unix(t.Timestamp, 0),
				Memo:      t.Memo,
			})
		}

		l.accounts[id] = a
	}

	return l, nil
}

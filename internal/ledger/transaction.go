package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction is one signed money-movement record. It is immutable once
// created: legs are appended to an account's history and never modified or
// removed afterwards.
type Transaction struct {
	ID        uuid.UUID
	Recipient uuid.UUID
	Amount    int64 // negative for a debit leg, positive for a credit leg
	Timestamp time.Time
	Memo      string
}

// NewTransaction records one movement leg with a freshly generated id.
// An empty memo defaults to "<amount> to <recipient>". Timestamps are kept
// at second resolution so the snapshot round trip is exact.
func NewTransaction(recipient uuid.UUID, amount int64, ts time.Time, memo string) Transaction {
	if memo == "" {
		memo = fmt.Sprintf("%d to %s", amount, recipient)
	}

	return Transaction{
		ID:        uuid.New(),
		Recipient: recipient,
		Amount:    amount,
		Timestamp: ts.Truncate(time.Second),
		Memo:      memo,
	}
}

// Package snapshot defines the persisted form of the ledger and a
// file-backed store for it. The document layout is the only wire-level
// contract the system has; field names and shapes must stay stable across
// save/load cycles.
package snapshot

// Document maps a ledger identity to its account record.
type Document map[string]Account

type Account struct {
	Nickname       string        `json:"nickname"`
	AccountNumber  string        `json:"account_number"`
	Balance        int64         `json:"balance"`
	OverdraftLimit int64         `json:"overdraft_limit"`
	Transactions   []Transaction `json:"transactions"`
}

type Transaction struct {
	Timestamp     int64  `json:"timestamp"`
	Recipient     string `json:"recipient"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	TransactionID string `json:"transaction_id"`
}

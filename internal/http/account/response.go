package account

import (
	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/ledger"
)

type accountResponse struct {
	Identity       string `json:"identity"`
	Nickname       string `json:"nickname"`
	AccountNumber  string `json:"account_number"`
	Balance        int64  `json:"balance"`
	OverdraftLimit int64  `json:"overdraft_limit"`
}

func toResponse(info bank.AccountInfo) accountResponse {
	return accountResponse{
		Identity:       info.Identity,
		Nickname:       info.Nickname,
		AccountNumber:  info.Number.String(),
		Balance:        info.Balance,
		OverdraftLimit: info.OverdraftLimit,
	}
}

type transactionResponse struct {
	Timestamp     int64  `json:"timestamp"`
	Recipient     string `json:"recipient"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo"`
	TransactionID string `json:"transaction_id"`
}

func toTransactionList(txs []ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, t := range txs {
		resp[i] = transactionResponse{
			Timestamp:     t.Timestamp.Unix(),
			Recipient:     t.Recipient.String(),
			Amount:        t.Amount,
			Memo:          t.Memo,
			TransactionID: t.ID.String(),
		}
	}

	return resp
}

type leaderboardEntryResponse struct {
	Rank          int    `json:"rank"`
	Nickname      string `json:"nickname"`
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
}

func toLeaderboard(entries []bank.LeaderboardEntry) []leaderboardEntryResponse {
	resp := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = leaderboardEntryResponse{
			Rank:          i + 1,
			Nickname:      e.Nickname,
			AccountNumber: e.Number.String(),
			Balance:       e.Balance,
		}
	}

	return resp
}

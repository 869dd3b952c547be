package view

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FormatAmount renders a signed bucks amount with an explicit sign so
// debit and credit legs are distinguishable at a glance.
func FormatAmount(amount int64) string {
	if amount > 0 {
		return "+" + strconv.FormatInt(amount, 10)
	}

	return strconv.FormatInt(amount, 10)
}

// FormatTime formats a transaction timestamp.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ShortID abbreviates a wallet address for table columns.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

package ledger

import "errors"

var (
	// ErrAccountExists is returned by Create when the identity key is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when looking up an absent identity.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a debit or transfer would push
	// the balance below the overdraft limit.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Package bot is the free-text command interface in front of the bank
// service: it parses chat comments, resolves user references to ledger
// identities and renders reply text.
package bot

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type Kind string

const (
	KindHelp     Kind = "help"
	KindCreate   Kind = "create"
	KindBalance  Kind = "balance"
	KindTransfer Kind = "transfer"
	KindIssue    Kind = "issue"
)

// Command is one parsed chat instruction.
type Command struct {
	Kind   Kind
	Target string // normalized identity for balance/transfer/issue
	Amount int64  // transfer/issue

	// InvalidAmount marks an amount token that was present but not an
	// integer; the responder answers "Invalid amount." instead of acting.
	InvalidAmount bool
}

// Normalize folds a user reference into the ledger identity key: trimmed,
// "u/"-style and "@" prefixes stripped, case-folded.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimPrefix(name, "@")

	return cases.Fold().String(name)
}

// Parse extracts a command from a comment body. The trigger word must be
// lowercase; matching against the body is case-insensitive. ok is false
// when the comment does not address the bot at all.
func Parse(trigger, body string) (Command, bool) {
	lower := strings.ToLower(body)

	idx := strings.Index(lower, trigger)
	if idx < 0 {
		return Command{}, false
	}

	fields := strings.Fields(body[idx+len(trigger):])
	if len(fields) == 0 {
		return Command{}, false
	}

	switch strings.ToLower(fields[0]) {
	case "help":
		return Command{Kind: KindHelp}, true

	case "create":
		return Command{Kind: KindCreate}, true

	case "balance":
		cmd := Command{Kind: KindBalance}
		if len(fields) > 1 {
			cmd.Target = Normalize(fields[1])
		}

		return cmd, true

	case "transfer":
		return parseAmountCommand(KindTransfer, fields), true

	case "issue":
		return parseAmountCommand(KindIssue, fields), true
	}

	return Command{}, false
}

func parseAmountCommand(kind Kind, fields []string) Command {
	cmd := Command{Kind: kind}

	if len(fields) < 2 {
		cmd.InvalidAmount = true
		return cmd
	}

	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		cmd.InvalidAmount = true
		return cmd
	}

	cmd.Amount = amount
	if len(fields) > 2 {
		cmd.Target = Normalize(fields[2])
	}

	return cmd
}

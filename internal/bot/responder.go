package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/ledger"
	"github.com/jwoodham/bucksbot/internal/metrics"
)

// Responder turns chat comments into ledger operations and reply text.
type Responder struct {
	svc     *bank.Service
	trigger string
	self    string
	mods    map[string]bool
}

func NewResponder(svc *bank.Service, trigger, self string, moderators []string) *Responder {
	mods := make(map[string]bool, len(moderators))
	for _, m := range moderators {
		mods[Normalize(m)] = true
	}

	return &Responder{
		svc:     svc,
		trigger: strings.ToLower(trigger),
		self:    Normalize(self),
		mods:    mods,
	}
}

// Respond handles one comment. handled is false when the comment does not
// address the bot, or was written by the bot itself.
func (r *Responder) Respond(author, body string) (reply string, handled bool) {
	id := Normalize(author)
	if id == "" || id == r.self {
		return "", false
	}

	cmd, ok := Parse(r.trigger, body)
	if !ok {
		return "", false
	}

	metrics.CommandsHandled.WithLabelValues(string(cmd.Kind)).Inc()

	switch cmd.Kind {
	case KindHelp:
		return r.help(), true
	case KindCreate:
		return r.create(id), true
	case KindBalance:
		return r.balance(id, cmd), true
	case KindTransfer:
		return r.transfer(id, cmd), true
	case KindIssue:
		return r.issue(id, cmd), true
	}

	return "", false
}

func (r *Responder) help() string {
	return fmt.Sprintf(
		"I am %s. I keep the ledger for bucks, a play currency.\n\n"+
			"%s create - Open an account. You start with %d bucks and a max overdraft of %d bucks.\n\n"+
			"%s balance [user] - Check your or their balance.\n\n"+
			"%s transfer <amount> <user> - Transfer bucks to another account.\n\n"+
			"%s issue <amount> <user> - Issue bucks to an account (moderators only).\n\n"+
			"%s help - Show this message.",
		r.self, r.trigger, ledger.DefaultBalance, -ledger.DefaultOverdraftLimit,
		r.trigger, r.trigger, r.trigger, r.trigger,
	)
}

func (r *Responder) create(id string) string {
	info, err := r.svc.CreateAccount(id, id)
	if errors.Is(err, ledger.ErrAccountExists) {
		existing, getErr := r.svc.Account(id)
		if getErr != nil {
			return "Something went wrong, try again later."
		}

		return fmt.Sprintf("You already have an account. Wallet ID: %s", existing.Number)
	}
	if err != nil {
		return "Something went wrong, try again later."
	}

	return fmt.Sprintf(
		"Account created for %s, wallet ID %s, with balance %d and overdraft limit %d.",
		id, info.Number, info.Balance, -info.OverdraftLimit,
	)
}

func (r *Responder) balance(id string, cmd Command) string {
	target := cmd.Target
	if target == "" {
		target = id
	}

	info, err := r.svc.Account(target)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		if target == id {
			return fmt.Sprintf("You do not have an account. Create one with `%s create`.", r.trigger)
		}

		return fmt.Sprintf("That user does not have an account. They can create one with `%s create`.", r.trigger)
	}
	if err != nil {
		return "Something went wrong, try again later."
	}

	return fmt.Sprintf("Balance: %d", info.Balance)
}

func (r *Responder) transfer(id string, cmd Command) string {
	if cmd.InvalidAmount {
		return "Invalid amount."
	}

	sender, err := r.svc.Account(id)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return fmt.Sprintf("You do not have an account. Create one with `%s create`.", r.trigger)
	}
	if err != nil {
		return "Something went wrong, try again later."
	}

	receipt, err := r.svc.Transfer(id, cmd.Target, cmd.Amount)

	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, ledger.ErrAccountNotFound):
		return "Invalid recipient."
	case errors.Is(err, ledger.ErrInsufficientFunds):
		// max transferable = balance + |overdraft limit|
		return fmt.Sprintf(
			"Insufficient funds, you can transfer at most %d bucks.",
			sender.Balance-sender.OverdraftLimit,
		)
	case err != nil:
		return "Something went wrong, try again later."
	}

	return fmt.Sprintf("Transferred %d bucks to wallet address %s.", receipt.Amount, receipt.To.Number)
}

func (r *Responder) issue(id string, cmd Command) string {
	if !r.mods[id] {
		return "You must be a moderator to issue bucks."
	}

	if cmd.InvalidAmount {
		return "Invalid amount."
	}

	info, err := r.svc.Issue(cmd.Target, cmd.Amount)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return "Invalid recipient."
	}
	if err != nil {
		return "Something went wrong, try again later."
	}

	return fmt.Sprintf("Issued %d bucks to wallet address %s.", cmd.Amount, info.Number)
}

// Leaderboard renders the pinned top-n board.
func (r *Responder) Leaderboard(n int) string {
	entries := r.svc.Leaderboard(n)
	if len(entries) < n {
		return "**Leaderboard**\n\nNot enough users to generate board!"
	}

	var b strings.Builder
	b.WriteString("**Leaderboard**")

	// blank line between rows, markdown-style
	for i, e := range entries {
		fmt.Fprintf(&b, "\n\n%d. %s: Balance: %d", i+1, e.Nickname, e.Balance)
	}

	return b.String()
}

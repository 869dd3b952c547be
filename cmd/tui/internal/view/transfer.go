package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/bot"
)

// TransferModel is a local admin path for moving bucks between accounts,
// writing through the same service the API uses.
type TransferModel struct {
	CommonModel
	svc *bank.Service

	form   *huh.Form
	from   string
	to     string
	amount string
	status string
}

func NewTransferModel(svc *bank.Service) TransferModel {
	m := TransferModel{svc: svc}
	m.form = m.newForm()

	return m
}

func (m TransferModel) Title() string     { return "Transfer" }
func (m TransferModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m TransferModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("from").
				Title("From").
				Placeholder("username").
				Value(&m.from).
				Validate(requiredField),

			huh.NewInput().
				Key("to").
				Title("To").
				Placeholder("username").
				Value(&m.to).
				Validate(requiredField),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("100").
				Value(&m.amount).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("amount must be a positive integer")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)
}

func requiredField(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}

	return nil
}

func (m TransferModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transferDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Transfer failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Transferred %d bucks from %s to %s.",
				msg.receipt.Amount, msg.receipt.From.Identity, msg.receipt.To.Identity)
		}

		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	from := bot.Normalize(m.form.GetString("from"))
	to := bot.Normalize(m.form.GetString("to"))
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("amount")), 10, 64)

	return m, m.transferCmd(from, to, amount)
}

func (m TransferModel) View() string {
	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

type transferDoneMsg struct {
	receipt bank.TransferReceipt
	err     error
}

func (m TransferModel) transferCmd(from, to string, amount int64) tea.Cmd {
	return func() tea.Msg {
		receipt, err := m.svc.Transfer(from, to, amount)
		return transferDoneMsg{receipt: receipt, err: err}
	}
}

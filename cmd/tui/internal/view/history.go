package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/bot"
	"github.com/jwoodham/bucksbot/internal/ledger"
)

type historyState int

const (
	historyStatePick historyState = iota
	historyStateBrowse
)

// HistoryModel shows one account's transaction legs, newest last.
type HistoryModel struct {
	CommonModel
	svc *bank.Service

	state    historyState
	form     *huh.Form
	table    table.Model
	identity string
	err      error
}

func NewHistoryModel(svc *bank.Service) HistoryModel {
	columns := []table.Column{
		{Title: "Time", Width: 20},
		{Title: "Amount", Width: 10},
		{Title: "Recipient", Width: 10},
		{Title: "Memo", Width: 50},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := HistoryModel{svc: svc, table: t}
	m.form = m.newPickForm()

	return m
}

func (m HistoryModel) Title() string { return "Account History" }
func (m HistoryModel) ShortHelp() string {
	if m.state == historyStatePick {
		return "Enter: load | Esc: back"
	}

	return "Esc: back"
}

func (m HistoryModel) newPickForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("identity").
				Title("Account").
				Placeholder("username").
				Value(&m.identity).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("account is required")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m HistoryModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = historyStatePick
			m.form = m.newPickForm()

			return m, m.form.Init()
		}

		m.err = nil
		m.state = historyStateBrowse
		m.refreshTable(msg.txs)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == historyStateBrowse {
				m.state = historyStatePick
				m.form = m.newPickForm()

				return m, m.form.Init()
			}

			return m, Back
		}
	}

	if m.state == historyStatePick {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.identity = m.form.GetString("identity")

		return m, m.loadCmd(bot.Normalize(m.identity))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	if m.state == historyStatePick {
		content := m.form.View()
		if m.err != nil {
			content = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.err.Error()) + "\n\n" + content
		}

		return lipgloss.NewStyle().Padding(1, 2).Render(content)
	}

	header := fmt.Sprintf("History for %s", bot.Normalize(m.identity))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *HistoryModel) refreshTable(txs []ledger.Transaction) {
	rows := make([]table.Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, table.Row{
			FormatTime(t.Timestamp),
			FormatAmount(t.Amount),
			ShortID(t.Recipient),
			t.Memo,
		})
	}

	m.table.SetRows(rows)
}

type historyLoadedMsg struct {
	txs []ledger.Transaction
	err error
}

func (m HistoryModel) loadCmd(identity string) tea.Cmd {
	return func() tea.Msg {
		txs, err := m.svc.History(identity)
		return historyLoadedMsg{txs: txs, err: err}
	}
}

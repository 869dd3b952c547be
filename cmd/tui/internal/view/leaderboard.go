package view

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwoodham/bucksbot/internal/bank"
)

const leaderboardSize = 10

type LeaderboardModel struct {
	CommonModel
	svc *bank.Service

	table   table.Model
	entries []bank.LeaderboardEntry
}

func NewLeaderboardModel(svc *bank.Service) LeaderboardModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Nickname", Width: 24},
		{Title: "Wallet", Width: 10},
		{Title: "Balance", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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

	return LeaderboardModel{svc: svc, table: t}
}

func (m LeaderboardModel) Title() string { return "Leaderboard" }
func (m LeaderboardModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m LeaderboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoadedMsg:
		m.entries = msg.entries
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LeaderboardModel) View() string {
	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *LeaderboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for i, e := range m.entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			e.Nickname,
			ShortID(e.Number),
			strconv.FormatInt(e.Balance, 10),
		})
	}

	m.table.SetRows(rows)
}

type leaderboardLoadedMsg struct {
	entries []bank.LeaderboardEntry
}

func (m LeaderboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return leaderboardLoadedMsg{entries: m.svc.Leaderboard(leaderboardSize)}
	}
}

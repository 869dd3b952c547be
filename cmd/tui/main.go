package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jwoodham/bucksbot/cmd/tui/internal/view"
	"github.com/jwoodham/bucksbot/internal/bank"
	"github.com/jwoodham/bucksbot/internal/config"
	"github.com/jwoodham/bucksbot/internal/ledger"
	"github.com/jwoodham/bucksbot/internal/snapshot"
)

type model struct {
	service *bank.Service

	currentView View

	leaderboardView view.LeaderboardModel
	historyView     view.HistoryModel
	transferView    view.TransferModel
}

type View int

const (
	ViewMenu        View = 0
	ViewLeaderboard View = 1
	ViewHistory     View = 2
	ViewTransfer    View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store := snapshot.NewStore(cfg.Snapshot.Path)

	l, err := loadLedger(store)
	if err != nil {
		slog.Error("failed to load snapshot", "path", cfg.Snapshot.Path, "error", err)
		os.Exit(1)
	}

	svc := bank.NewService(l, store)

	return model{
		service:         svc,
		currentView:     ViewMenu,
		leaderboardView: view.NewLeaderboardModel(svc),
		historyView:     view.NewHistoryModel(svc),
		transferView:    view.NewTransferModel(svc),
	}
}

func loadLedger(store *snapshot.Store) (*ledger.Ledger, error) {
	doc, err := store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, err
	}

	return ledger.FromSnapshot(doc)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLeaderboard
				m.leaderboardView = view.NewLeaderboardModel(m.service)

				return m, m.leaderboardView.Init()
			case "2":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.service)

				return m, m.historyView.Init()
			case "3":
				m.currentView = ViewTransfer
				m.transferView = view.NewTransferModel(m.service)

				return m, m.transferView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLeaderboard:
		var newModel tea.Model
		newModel, cmd = m.leaderboardView.Update(msg)
		m.leaderboardView = newModel.(view.LeaderboardModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewTransfer:
		var newModel tea.Model
		newModel, cmd = m.transferView.Update(msg)
		m.transferView = newModel.(view.TransferModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Bucksbot TUI\n\n" +
				"1. Leaderboard\n" +
				"2. Account History\n" +
				"3. Transfer\n\n" +
				"q. Quit",
		)
	case ViewLeaderboard:
		return m.leaderboardView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewTransfer:
		return m.transferView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

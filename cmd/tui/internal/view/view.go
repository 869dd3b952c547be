package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is one screen of the admin console: a bubbletea model plus the
// metadata the menu needs to present it.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel carries state shared across screens.
type CommonModel struct{}

// BackMsg asks the root model to return to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

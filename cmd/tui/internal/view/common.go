package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/costperday/costperday/internal/setting"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// SettingsSavedMsg tells the root model to pick up the new snapshot.
type SettingsSavedMsg struct {
	Settings setting.Settings
}

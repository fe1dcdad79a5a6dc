package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/costperday/costperday/internal/i18n"
	"github.com/costperday/costperday/internal/importer"
	"github.com/costperday/costperday/internal/item"
	"github.com/costperday/costperday/internal/setting"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateConfirm
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	itemService   *item.Service
	importService *importer.Service
	settings      setting.Settings

	state      importState
	filePicker filepicker.Model
	form       *huh.Form

	selectedPath string
	parsed       []*item.Item
	confirming   bool

	status string
	err    error
}

func NewImportModel(itemSvc *item.Service, impSvc *importer.Service, settings setting.Settings) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".json"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.Height = 15

	return ImportModel{
		itemService:   itemSvc,
		importService: impSvc,
		settings:      settings,
		filePicker:    fp,
	}
}

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateConfirm:
		return "Enter: choose"
	case importStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.parsed = msg.items

		return m.startConfirm()

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d items.", msg.count)

		return m, nil
	}

	switch m.state {
	case importStateFilePick:
		return m.updateFilePick(msg)
	case importStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateConfirm, importStateResult:
		m.state = importStateFilePick
		m.err = nil
		m.status = ""
		m.parsed = nil
		m.form = nil

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.selectedPath = path
		m.state = importStateImporting
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

// startConfirm warns that importing replaces the whole collection before
// anything is written.
func (m ImportModel) startConfirm() (tea.Model, tea.Cmd) {
	m.confirming = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(i18n.T(m.settings.Language, "importData")).
				Description(fmt.Sprintf(
					"Replace all existing items with the %d items from %s?",
					len(m.parsed), m.selectedPath,
				)).
				Affirmative(i18n.T(m.settings.Language, "confirm")).
				Negative(i18n.T(m.settings.Language, "cancel")).
				Value(&m.confirming),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = importStateConfirm

	return m, m.form.Init()
}

func (m ImportModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirming {
		m.state = importStateFilePick
		m.form = nil
		m.parsed = nil

		return m, m.filePicker.Init()
	}

	m.state = importStateImporting
	m.status = "Importing..."

	return m, m.importCmd()
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s:\n\n%s", i18n.T(m.settings.Language, "importData"), m.filePicker.View()),
		)
	case importStateConfirm:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

// Messages

type parseResultMsg struct {
	items []*item.Item
	err   error
}

type importResultMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	svc := m.importService

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		items, err := svc.Parse(f)
		if err != nil {
			return parseResultMsg{err: err}
		}

		return parseResultMsg{items: items}
	}
}

func (m ImportModel) importCmd() tea.Cmd {
	items := m.parsed
	svc := m.itemService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := svc.ReplaceAll(ctx, items); err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{count: len(items)}
	}
}

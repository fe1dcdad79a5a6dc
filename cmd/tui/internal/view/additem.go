package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/costperday/costperday/internal/i18n"
	"github.com/costperday/costperday/internal/item"
	"github.com/costperday/costperday/internal/setting"
)

type addState int

const (
	addStateForm addState = iota
	addStateResult
)

type AddItemModel struct {
	CommonModel
	itemService *item.Service
	settings    setting.Settings

	state addState
	form  *huh.Form
	err   error

	formName  string
	formPrice string
	formDate  string
}

func NewAddItemModel(itemSvc *item.Service, settings setting.Settings) AddItemModel {
	m := AddItemModel{
		itemService: itemSvc,
		settings:    settings,
	}
	m.form = buildItemForm(settings.Language, i18n.T(settings.Language, "addNewItem"),
		&m.formName, &m.formPrice, &m.formDate)

	return m
}

func (m AddItemModel) ShortHelp() string {
	if m.state == addStateResult {
		return "Esc: back to menu"
	}

	return "Esc: back | Enter/Tab: navigate form"
}

func (m AddItemModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddItemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(addItemResultMsg); ok {
		m.state = addStateResult
		m.err = result.err

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state == addStateResult {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createItemCmd()
}

func (m AddItemModel) View() string {
	if m.state == addStateResult {
		return m.viewResult()
	}

	return lipgloss.NewStyle().Padding(1).Render(m.form.View())
}

func (m AddItemModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("Saved.") +
			"\n\n(Esc to go back)",
	)
}

type addItemResultMsg struct {
	err error
}

func (m AddItemModel) createItemCmd() tea.Cmd {
	params, err := parseItemForm(m.formName, m.formPrice, m.formDate)
	svc := m.itemService

	return func() tea.Msg {
		if err != nil {
			return addItemResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := svc.Create(ctx, params); err != nil {
			return addItemResultMsg{err: err}
		}

		return addItemResultMsg{}
	}
}

package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/costperday/costperday/internal/i18n"
	"github.com/costperday/costperday/internal/setting"
)

var currencyOptions = []string{"$", "€", "¥", "£"}

type settingsState int

const (
	settingsStateForm settingsState = iota
	settingsStateResult
)

type SettingsModel struct {
	CommonModel
	settingService *setting.Service
	settings       setting.Settings

	state settingsState
	form  *huh.Form
	err   error

	formLanguage string
	formCurrency string
}

func NewSettingsModel(settingSvc *setting.Service, settings setting.Settings) SettingsModel {
	m := SettingsModel{
		settingService: settingSvc,
		settings:       settings,
		formLanguage:   settings.Language,
		formCurrency:   settings.Currency,
	}

	lang := settings.Language

	langOptions := make([]huh.Option[string], 0, len(i18n.Languages()))
	for _, code := range i18n.Languages() {
		langOptions = append(langOptions, huh.NewOption(i18n.LanguageName(code), code))
	}

	symbolOptions := make([]huh.Option[string], 0, len(currencyOptions))
	for _, symbol := range currencyOptions {
		symbolOptions = append(symbolOptions, huh.NewOption(symbol, symbol))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(i18n.T(lang, "settings")),

			huh.NewSelect[string]().
				Key("language").
				Title(i18n.T(lang, "selectLanguage")).
				Options(langOptions...).
				Value(&m.formLanguage),

			huh.NewSelect[string]().
				Key("currency").
				Title(i18n.T(lang, "selectCurrency")).
				Options(symbolOptions...).
				Value(&m.formCurrency),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m SettingsModel) ShortHelp() string {
	if m.state == settingsStateResult {
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: select"
}

func (m SettingsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(saveSettingsResultMsg); ok {
		m.state = settingsStateResult
		m.err = result.err

		if result.err == nil {
			m.settings = result.settings
			return m, func() tea.Msg { return SettingsSavedMsg{Settings: result.settings} }
		}

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state == settingsStateResult {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveSettingsCmd()
}

func (m SettingsModel) View() string {
	if m.state == settingsStateResult {
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

	return lipgloss.NewStyle().Padding(1).Render(m.form.View())
}

type saveSettingsResultMsg struct {
	settings setting.Settings
	err      error
}

func (m SettingsModel) saveSettingsCmd() tea.Cmd {
	language := m.formLanguage
	currency := m.formCurrency
	svc := m.settingService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := svc.Set(ctx, setting.KeyLanguage, language); err != nil {
			return saveSettingsResultMsg{err: err}
		}

		if err := svc.Set(ctx, setting.KeyCurrency, currency); err != nil {
			return saveSettingsResultMsg{err: err}
		}

		return saveSettingsResultMsg{
			settings: setting.Settings{Language: language, Currency: currency},
		}
	}
}

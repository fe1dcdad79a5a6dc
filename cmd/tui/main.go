package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/costperday/costperday/cmd/tui/internal/view"
	"github.com/costperday/costperday/internal/config"
	"github.com/costperday/costperday/internal/database"
	"github.com/costperday/costperday/internal/export"
	"github.com/costperday/costperday/internal/i18n"
	"github.com/costperday/costperday/internal/importer"
	"github.com/costperday/costperday/internal/item"
	itemStore "github.com/costperday/costperday/internal/item/store"
	"github.com/costperday/costperday/internal/setting"
	settingStore "github.com/costperday/costperday/internal/setting/store"
)

type model struct {
	itemService    *item.Service
	settingService *setting.Service
	importService  *importer.Service
	exportService  *export.Service

	settings setting.Settings

	currentView View

	itemsView    view.ItemsModel
	addView      view.AddItemModel
	settingsView view.SettingsModel
	exportView   view.ExportModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewItems    View = 1
	ViewAdd      View = 2
	ViewSettings View = 3
	ViewExport   View = 4
	ViewImport   View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	itemSvc := item.NewService(itemStore.New(db))
	settingSvc := setting.NewService(settingStore.New(db))
	impSvc := importer.NewService()
	expSvc := export.NewService(itemSvc)

	settings, err := settingSvc.Load(context.Background())
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	return model{
		itemService:    itemSvc,
		settingService: settingSvc,
		importService:  impSvc,
		exportService:  expSvc,
		settings:       settings,
		currentView:    ViewMenu,
		itemsView:      view.NewItemsModel(itemSvc, settings),
		addView:        view.NewAddItemModel(itemSvc, settings),
		settingsView:   view.NewSettingsModel(settingSvc, settings),
		exportView:     view.NewExportModel(expSvc, settings),
		importView:     view.NewImportModel(itemSvc, impSvc, settings),
	}
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
				m.currentView = ViewItems
				m.itemsView = view.NewItemsModel(m.itemService, m.settings)

				return m, m.itemsView.Init()
			case "2":
				m.currentView = ViewAdd
				m.addView = view.NewAddItemModel(m.itemService, m.settings)

				return m, m.addView.Init()
			case "3":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.settingService, m.settings)

				return m, m.settingsView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.settings)

				return m, m.exportView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.itemService, m.importService, m.settings)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.SettingsSavedMsg:
		m.settings = msg.Settings
		return m, nil
	}

	switch m.currentView {
	case ViewItems:
		var newModel tea.Model
		newModel, cmd = m.itemsView.Update(msg)
		m.itemsView = newModel.(view.ItemsModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddItemModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		lang := m.settings.Language

		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"%s\n\n"+
				"1. %s\n"+
				"2. %s\n"+
				"3. %s\n"+
				"4. %s\n"+
				"5. %s\n\n"+
				"q. Quit",
			i18n.T(lang, "appName"),
			i18n.T(lang, "totalDailyCost"),
			i18n.T(lang, "addNewItem"),
			i18n.T(lang, "settings"),
			i18n.T(lang, "exportData"),
			i18n.T(lang, "importData"),
		))
	case ViewItems:
		return m.itemsView.View()
	case ViewAdd:
		return m.addView.View()
	case ViewSettings:
		return m.settingsView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewImport:
		return m.importView.View()
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

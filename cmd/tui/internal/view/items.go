package view

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/costperday/costperday/internal/cost"
	"github.com/costperday/costperday/internal/i18n"
	"github.com/costperday/costperday/internal/item"
	"github.com/costperday/costperday/internal/setting"
)

type itemsState int

const (
	itemsStateList itemsState = iota
	itemsStateEditing
	itemsStateConfirmDelete
)

// listEntry wraps an item to implement list.Item. Daily cost and elapsed
// days are computed once per load against a shared instant, so the rows
// always sum to the displayed total.
type listEntry struct {
	it          *item.Item
	dailyCost   float64
	elapsedDays int64
	settings    setting.Settings
}

func (e listEntry) Title() string {
	daily := lipgloss.NewStyle().Bold(true).
		Render(FormatPrice(e.settings.Currency, e.dailyCost) + i18n.T(e.settings.Language, "perDay"))

	return fmt.Sprintf("%s  %s", e.it.Name, daily)
}

func (e listEntry) Description() string {
	return fmt.Sprintf("%s %s  |  %s  (%d %s)",
		i18n.T(e.settings.Language, "purchaseAmount"),
		FormatPrice(e.settings.Currency, e.it.Price),
		FormatDate(e.it.PurchaseDate),
		e.elapsedDays,
		i18n.T(e.settings.Language, "daysAgo"),
	)
}

func (e listEntry) FilterValue() string { return e.it.Name }

type ItemsModel struct {
	CommonModel
	itemService *item.Service
	settings    setting.Settings

	state itemsState
	list  list.Model
	form  *huh.Form

	items      []*item.Item
	total      float64
	selected   *item.Item
	confirming bool

	loading bool
	status  string

	// Form field bindings
	formName  string
	formPrice string
	formDate  string
}

func NewItemsModel(itemSvc *item.Service, settings setting.Settings) ItemsModel {
	l := list.New([]list.Item{}, entryDelegate{}, 0, 0)
	l.Title = i18n.T(settings.Language, "appName")
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return ItemsModel{
		itemService: itemSvc,
		settings:    settings,
		list:        l,
		loading:     true,
	}
}

func (m ItemsModel) ShortHelp() string {
	switch m.state {
	case itemsStateEditing:
		return "Esc: cancel | Enter/Tab: navigate form"
	case itemsStateConfirmDelete:
		return "Enter: choose"
	}

	return "Esc: back | Enter: edit | d: delete | /: filter"
}

func (m ItemsModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m ItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadItemsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.items = msg.items
		m.total = msg.total
		m.refreshListEntries(msg.now)

		if len(msg.items) == 0 {
			m.status = i18n.T(m.settings.Language, "noItems")
		} else {
			m.status = ""
		}

		return m, nil

	case saveItemResultMsg:
		m.state = itemsStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		return m, m.loadItemsCmd()

	case deleteItemResultMsg:
		m.state = itemsStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		// Recompute the total from a fresh read rather than adjusting
		// it locally.
		return m, m.loadItemsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case itemsStateList:
		return m.updateList(msg)
	case itemsStateEditing:
		return m.updateEditing(msg)
	case itemsStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m ItemsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (close filter)
			}

			return m, Back
		case keyMsg.Type == tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break // let the list handle it (confirm filter)
			}

			return m.startEditing()
		case keyMsg.String() == "d":
			if m.list.FilterState() == list.Filtering {
				break
			}

			return m.startConfirmDelete()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ItemsModel) startEditing() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(listEntry)
	if !ok {
		return m, nil
	}

	m.selected = selected.it
	m.formName = selected.it.Name
	m.formPrice = strconv.FormatFloat(selected.it.Price, 'f', -1, 64)
	m.formDate = FormatDate(selected.it.PurchaseDate)

	m.form = buildItemForm(m.settings.Language, i18n.T(m.settings.Language, "editItem"),
		&m.formName, &m.formPrice, &m.formDate)
	m.state = itemsStateEditing

	return m, m.form.Init()
}

func (m ItemsModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = itemsStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveItemCmd()
}

func (m ItemsModel) startConfirmDelete() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(listEntry)
	if !ok {
		return m, nil
	}

	m.selected = selected.it
	m.confirming = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(i18n.T(m.settings.Language, "confirmDelete")).
				Description(i18n.T(m.settings.Language, "deleteConfirmation")).
				Affirmative(i18n.T(m.settings.Language, "confirm")).
				Negative(i18n.T(m.settings.Language, "cancel")).
				Value(&m.confirming),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = itemsStateConfirmDelete

	return m, m.form.Init()
}

func (m ItemsModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = itemsStateList
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirming {
		m.state = itemsStateList
		m.form = nil

		return m, nil
	}

	return m, m.deleteItemCmd()
}

func (m ItemsModel) View() string {
	switch m.state {
	case itemsStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading...")
		}

		header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s: %s%s",
			i18n.T(m.settings.Language, "totalDailyCost"),
			FormatPrice(m.settings.Currency, m.total),
			i18n.T(m.settings.Language, "perDay"),
		))

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n\n" + statusLine + m.list.View(),
		)

	case itemsStateEditing, itemsStateConfirmDelete:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	return ""
}

func (m *ItemsModel) refreshListEntries(now time.Time) {
	entries := make([]list.Item, len(m.items))
	for i, it := range m.items {
		entries[i] = listEntry{
			it:          it,
			dailyCost:   cost.DailyCost(it.Price, it.PurchaseDate, now),
			elapsedDays: cost.ElapsedDays(it.PurchaseDate, now),
			settings:    m.settings,
		}
	}

	m.list.SetItems(entries)
}

// Messages

type loadItemsMsg struct {
	items []*item.Item
	total float64
	now   time.Time
	err   error
}

func (m ItemsModel) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.itemService.List(ctx)
		if err != nil {
			return loadItemsMsg{err: err}
		}

		now := time.Now()

		return loadItemsMsg{
			items: items,
			total: cost.TotalDailyCost(items, now),
			now:   now,
		}
	}
}

type saveItemResultMsg struct {
	err error
}

func (m ItemsModel) saveItemCmd() tea.Cmd {
	id := m.selected.ID
	params, err := parseItemForm(m.formName, m.formPrice, m.formDate)
	svc := m.itemService

	return func() tea.Msg {
		if err != nil {
			return saveItemResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := svc.Update(ctx, id, params); err != nil {
			return saveItemResultMsg{err: err}
		}

		return saveItemResultMsg{}
	}
}

type deleteItemResultMsg struct {
	err error
}

func (m ItemsModel) deleteItemCmd() tea.Cmd {
	id := m.selected.ID
	svc := m.itemService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteItemResultMsg{err: svc.Delete(ctx, id)}
	}
}

// Shared item form helpers

func buildItemForm(lang, title string, name, price, date *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),

			huh.NewInput().
				Key("name").
				Title(i18n.T(lang, "itemName")).
				Placeholder(i18n.T(lang, "enterItemName")).
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("price").
				Title(i18n.T(lang, "price")).
				Placeholder(i18n.T(lang, "enterPrice")).
				Value(price).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("price must be a number")
					}
					// ParseFloat accepts "Inf" and "NaN".
					if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
						return fmt.Errorf("price must be positive")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title(i18n.T(lang, "date")).
				Placeholder("2006-01-02").
				Value(date).
				Validate(func(s string) error {
					// Local midnight, so entering today's date east of
					// UTC is not rejected as being in the future.
					t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.Local)
					if err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					if t.After(time.Now()) {
						return fmt.Errorf("date cannot be in the future")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func parseItemForm(name, price, date string) (item.CreateParams, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return item.CreateParams{}, fmt.Errorf("parsing price: %w", err)
	}

	d, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), time.Local)
	if err != nil {
		return item.CreateParams{}, fmt.Errorf("parsing date: %w", err)
	}

	return item.CreateParams{
		Name:         strings.TrimSpace(name),
		Price:        p,
		PurchaseDate: d,
	}, nil
}

// entryDelegate renders items in the list.
type entryDelegate struct{}

func (d entryDelegate) Height() int                             { return 2 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	e, ok := li.(listEntry)
	if !ok {
		return
	}

	title := e.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(e.Description()))
}

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazemk/makhzan/internal/i18n"
	"github.com/hazemk/makhzan/internal/inventory"
	"github.com/hazemk/makhzan/internal/prefs"
)

// mode is the active interaction mode.
type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeConfirm
	modeHelp
)

// Options configures the UI.
type Options struct {
	Store         *inventory.Store
	Catalog       *i18n.Catalog
	Language      i18n.Language
	ThemeName     string
	PrefsPath     string
	LowStock      int
	CriticalStock int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store     *inventory.Store
	catalog   *i18n.Catalog
	prefsPath string

	keys  keyMap
	theme Theme
	lang  i18n.Language

	lowStock      int
	criticalStock int

	width  int
	height int
	ready  bool

	mode     mode
	selected int // row index within the current page

	// Search state. searchSeq invalidates in-flight debounce timers:
	// only the newest timer's expiry may reach the store.
	searchInput textinput.Model
	searchSeq   int

	// Form state (create/edit).
	form formState

	// Confirm state.
	confirmTarget inventory.Product

	// Transient footer message.
	statusText string
	statusSeq  int
}

// ReloadMsg tells the UI that the data directory changed on disk and the
// store has been reloaded. Sent by the file watcher.
type ReloadMsg struct{}

type searchDebounceMsg struct {
	seq   int
	value string
}

type statusClearMsg struct {
	seq int
}

// New creates the root model.
func New(opts Options) Model {
	lowStock := opts.LowStock
	if lowStock <= 0 {
		lowStock = 10
	}
	criticalStock := opts.CriticalStock
	if criticalStock <= 0 {
		criticalStock = 5
	}

	search := textinput.New()
	search.CharLimit = 64
	search.Prompt = "/"

	return Model{
		store:         opts.Store,
		catalog:       opts.Catalog,
		prefsPath:     opts.PrefsPath,
		keys:          DefaultKeyMap(),
		theme:         GetTheme(opts.ThemeName),
		lang:          opts.Language,
		lowStock:      lowStock,
		criticalStock: criticalStock,
		searchInput:   search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case searchDebounceMsg:
		// A stale timer (older seq) or an unchanged value is dropped.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		if msg.value == m.store.UIState().SearchKeyword {
			return m, nil
		}
		m.store.SetSearchKeyword(msg.value)
		m.selected = 0
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusText = ""
		}
		return m, nil

	case ReloadMsg:
		m.selected = m.clampSelected(m.selected)
		return m, m.setStatus(m.tr("status.reloaded"))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeHelp:
		return m.renderHelp()
	case modeForm:
		return m.renderForm()
	case modeConfirm:
		return m.renderConfirm()
	default:
		return m.renderList()
	}
}

// handleKey processes keyboard input for the active mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeHelp:
		// Any key closes help.
		m.mode = modeList
		return m, nil
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeForm:
		return m.handleFormKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.store.View()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLang):
		m.lang = m.lang.Toggle()
		m.store.SetCollation(m.lang.Tag())
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.CategoryNext):
		m.store.SetSelectedCategory(nextCategory(view.Categories, m.store.UIState().SelectedCategory))
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.ResetFilters):
		m.store.ResetFilters()
		m.searchSeq++ // any pending search timer is now stale
		m.searchInput.SetValue("")
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.SortName):
		return m.sortBy(inventory.SortByName)
	case key.Matches(msg, m.keys.SortCategory):
		return m.sortBy(inventory.SortByCategory)
	case key.Matches(msg, m.keys.SortPrice):
		return m.sortBy(inventory.SortByPrice)
	case key.Matches(msg, m.keys.SortQuantity):
		return m.sortBy(inventory.SortByQuantity)
	case key.Matches(msg, m.keys.SortCreated):
		return m.sortBy(inventory.SortByCreatedAt)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.selected = m.clampSelected(m.selected + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.store.SetCurrentPage(m.store.UIState().CurrentPage - 1)
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.store.SetCurrentPage(m.store.UIState().CurrentPage + 1)
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.store.SetCurrentPage(1)
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		m.store.SetCurrentPage(view.TotalPages)
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.form = newFormState(m.catalog, m.lang, nil)
		m.mode = modeForm
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selectedProduct(); ok {
			m.form = newFormState(m.catalog, m.lang, &p)
			m.mode = modeForm
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selectedProduct(); ok {
			m.confirmTarget = p
			m.mode = modeConfirm
		}
		return m, nil
	}

	return m, nil
}

func (m Model) sortBy(field inventory.SortField) (tea.Model, tea.Cmd) {
	m.store.SortBy(field)
	m.selected = 0
	return m, nil
}

// selectedProduct resolves the highlighted row to a product.
func (m Model) selectedProduct() (inventory.Product, bool) {
	page := m.store.View().Page
	if len(page) == 0 {
		return inventory.Product{}, false
	}
	idx := m.clampSelected(m.selected)
	return page[idx], true
}

func (m Model) clampSelected(idx int) int {
	last := len(m.store.View().Page) - 1
	if last < 0 {
		return 0
	}
	return max(0, min(idx, last))
}

// setStatus shows a transient footer message.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusText = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(StatusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	// Best effort, like every other persistence write.
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Language: string(m.lang),
	})
}

// tr localizes a label key for the active language.
func (m Model) tr(key string) string {
	return m.catalog.T(m.lang, key)
}

// nextCategory cycles all → first category → … → last → all.
func nextCategory(categories []string, current string) string {
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, cat := range categories {
		if cat == current {
			if i+1 < len(categories) {
				return categories[i+1]
			}
			return ""
		}
	}
	return ""
}

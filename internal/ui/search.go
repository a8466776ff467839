package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// startSearch opens the search input seeded with the active keyword.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	m.searchInput.Prompt = m.tr("search.prompt") + ": "
	m.searchInput.SetValue(m.store.UIState().SearchKeyword)
	m.searchInput.CursorEnd()
	return m, m.searchInput.Focus()
}

// handleSearchKey routes keys while the search input is open. Every edit
// restarts the debounce timer; only the trailing value reaches the store,
// and a value equal to the last forwarded one is suppressed (checked at
// expiry in Update).
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Closing the control invalidates any pending timer so a stale
		// expiry cannot mutate the store afterwards.
		m.searchSeq++
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil

	case "enter":
		// Commit immediately; the pending timer becomes stale.
		m.searchSeq++
		value := m.searchInput.Value()
		if value != m.store.UIState().SearchKeyword {
			m.store.SetSearchKeyword(value)
			m.selected = 0
		}
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	return m, tea.Batch(cmd, debounceSearch(m.searchSeq, m.searchInput.Value()))
}

// debounceSearch schedules a trailing-edge emission of value. The seq
// lets Update discard expirations that a newer keystroke superseded.
func debounceSearch(seq int, value string) tea.Cmd {
	return tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq, value: value}
	})
}

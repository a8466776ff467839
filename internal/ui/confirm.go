package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		status := m.tr("status.deleted")
		if !m.store.Delete(m.confirmTarget.ID) {
			status = m.tr("status.notfound")
		}
		m.mode = modeList
		m.selected = m.clampSelected(m.selected)
		return m, m.setStatus(status)

	case "ctrl+c":
		return m, tea.Quit

	default:
		// n, esc, anything else: keep the record.
		m.mode = modeList
		return m, nil
	}
}

// renderConfirm draws the delete confirmation over the list.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	question := fmt.Sprintf(m.tr("confirm.delete"), m.confirmTarget.Name)
	content := styles.DangerText.Render(question)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key binding overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	lines := []string{
		m.tr("help.nav"),
		m.tr("help.actions"),
		m.tr("help.filter"),
		m.tr("help.misc"),
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.tr("help.title")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	align := lipgloss.NewStyle()
	if m.lang.RTL() {
		align = align.Width(44).Align(lipgloss.Right)
	}
	for i, line := range lines {
		b.WriteString(align.Render(styles.Text.Render(line)))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

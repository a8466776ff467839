package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazemk/makhzan/internal/inventory"
)

// Fixed column widths; the name column absorbs the rest.
const (
	colID       = 6
	colCategory = 16
	colQuantity = 7
	colPrice    = 11
	colCreated  = 12
)

// renderList draws the product table with its header and footer bars.
func (m Model) renderList() string {
	view := m.store.View()
	ui := m.store.UIState()

	header := m.renderHeader(view, ui)
	footer := m.renderFooter(view, ui)
	table := m.renderTable(view, ui)

	headerLines := lipgloss.Height(header)
	footerLines := lipgloss.Height(footer)
	contentHeight := max(m.height-headerLines-footerLines, 0)

	tableLines := strings.Split(table, "\n")
	if len(tableLines) > contentHeight {
		tableLines = tableLines[:contentHeight]
	}
	for len(tableLines) < contentHeight {
		tableLines = append(tableLines, "")
	}

	return header + "\n" + strings.Join(tableLines, "\n") + "\n" + footer
}

// renderHeader shows the app title plus the active filter and sort state.
func (m Model) renderHeader(view inventory.View, ui inventory.UIState) string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render(m.tr("app.title"))}

	if kw := strings.TrimSpace(ui.SearchKeyword); kw != "" {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf(m.tr("filter.search"), kw)))
	}
	category := m.tr("filter.all")
	if ui.SelectedCategory != "" {
		category = fmt.Sprintf(m.tr("filter.category"), ui.SelectedCategory)
	}
	parts = append(parts, styles.MutedText.Render(category))

	arrow := "↑"
	if ui.SortConfig.Direction == inventory.Descending {
		arrow = "↓"
	}
	sortLabel := fmt.Sprintf(m.tr("sort.label"), m.tr("sort."+string(ui.SortConfig.Field)), arrow)
	parts = append(parts, styles.MutedText.Render(sortLabel))

	content := strings.Join(parts, styles.FaintText.Render("  •  "))
	return styles.Header.Width(m.width).Align(m.align()).Render(content)
}

// renderTable draws the column headers and the current page of products.
func (m Model) renderTable(view inventory.View, ui inventory.UIState) string {
	styles := m.theme.Styles()
	showCreated := m.width >= LayoutCompactWidth

	nameWidth := m.width - colID - colCategory - colQuantity - colPrice - 2
	if showCreated {
		nameWidth -= colCreated
	}
	nameWidth = max(nameWidth, 12)

	headerCells := []string{
		padRight(m.tr("table.id"), colID),
		padRight(m.tr("table.name"), nameWidth),
		padRight(m.tr("table.category"), colCategory),
		padLeft(m.tr("table.quantity"), colQuantity),
		padLeft(m.tr("table.price"), colPrice),
	}
	if showCreated {
		headerCells = append(headerCells, padLeft(m.tr("table.created"), colCreated))
	}
	lines := []string{styles.AccentText.Bold(true).Render(strings.Join(headerCells, " "))}

	if len(view.Page) == 0 {
		lines = append(lines, "", styles.MutedText.Render(m.tr("list.empty")))
	}

	for i, p := range view.Page {
		cells := []string{
			padRight(fmt.Sprintf("#%d", p.ID), colID),
			padRight(truncate(p.Name, nameWidth), nameWidth),
			padRight(truncate(p.Category, colCategory), colCategory),
			padLeft(fmt.Sprintf("%d", p.Quantity), colQuantity),
			padLeft(fmt.Sprintf("%.2f", p.Price), colPrice),
		}
		if showCreated {
			cells = append(cells, padLeft(p.CreatedAt.Format("2006-01-02"), colCreated))
		}
		row := strings.Join(cells, " ")

		level := ClassifyStock(p.Quantity, m.lowStock, m.criticalStock)
		switch {
		case i == m.clampSelected(m.selected):
			lines = append(lines, styles.Selected.Width(m.width).Render(row))
		case level != StockOK:
			lines = append(lines, m.theme.StockStyle(level).Render(row))
		default:
			lines = append(lines, styles.Text.Render(row))
		}
	}

	if m.lang.RTL() {
		align := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right)
		for i, line := range lines {
			lines[i] = align.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// renderFooter shows pagination, transient status, and either the search
// input or the key hints.
func (m Model) renderFooter(view inventory.View, ui inventory.UIState) string {
	styles := m.theme.Styles()

	if m.mode == modeSearch {
		return styles.Footer.Width(m.width).Render(m.searchInput.View())
	}

	parts := []string{
		fmt.Sprintf(m.tr("list.page"), ui.CurrentPage, view.TotalPages),
		fmt.Sprintf(m.tr("list.items"), len(view.Page), view.TotalItems),
	}
	if m.statusText != "" {
		parts = append(parts, styles.SuccessText.Render(m.statusText))
	}
	if m.width >= LayoutWideWidth {
		parts = append(parts, styles.FaintText.Render(m.tr("help.misc")))
	}

	content := strings.Join(parts, "  •  ")
	return styles.Footer.Width(m.width).Align(m.align()).Render(content)
}

// align maps the layout direction to a lipgloss position.
func (m Model) align() lipgloss.Position {
	if m.lang.RTL() {
		return lipgloss.Right
	}
	return lipgloss.Left
}

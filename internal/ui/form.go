package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazemk/makhzan/internal/i18n"
	"github.com/hazemk/makhzan/internal/inventory"
)

// Form field order.
const (
	fieldName = iota
	fieldCategory
	fieldQuantity
	fieldPrice
	fieldCount
)

// formState holds the create/edit form. The store trusts its input, so
// all validation lives here, before anything reaches the store.
type formState struct {
	inputs [fieldCount]textinput.Model
	focus  int
	editID int64 // 0 means create
	errKey string
}

func newFormState(catalog *i18n.Catalog, lang i18n.Language, editing *inventory.Product) formState {
	var f formState
	labels := [fieldCount]string{
		catalog.T(lang, "form.name"),
		catalog.T(lang, "form.category"),
		catalog.T(lang, "form.quantity"),
		catalog.T(lang, "form.price"),
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = labels[i]
		in.CharLimit = 64
		f.inputs[i] = in
	}
	f.inputs[fieldQuantity].CharLimit = 9
	f.inputs[fieldPrice].CharLimit = 12

	if editing != nil {
		f.editID = editing.ID
		f.inputs[fieldName].SetValue(editing.Name)
		f.inputs[fieldCategory].SetValue(editing.Category)
		f.inputs[fieldQuantity].SetValue(strconv.Itoa(editing.Quantity))
		f.inputs[fieldPrice].SetValue(strconv.FormatFloat(editing.Price, 'f', -1, 64))
	}

	f.inputs[fieldName].Focus()
	return f
}

// validateForm checks raw field text and builds the trusted FormData the
// store expects. A non-empty errKey names the localized message to show.
func validateForm(name, category, quantity, price string) (inventory.FormData, string) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return inventory.FormData{}, "form.error.name"
	}
	if category == "" {
		return inventory.FormData{}, "form.error.category"
	}

	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil || qty < 0 {
		return inventory.FormData{}, "form.error.quantity"
	}

	prc, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || prc < 0 {
		return inventory.FormData{}, "form.error.price"
	}

	return inventory.FormData{Name: name, Category: category, Quantity: qty, Price: prc}, ""
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil

	case "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		return m.focusFormField((m.form.focus + 1) % fieldCount)

	case "shift+tab", "up":
		return m.focusFormField((m.form.focus + fieldCount - 1) % fieldCount)

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) focusFormField(idx int) (tea.Model, tea.Cmd) {
	m.form.inputs[m.form.focus].Blur()
	m.form.focus = idx
	return m, m.form.inputs[idx].Focus()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	data, errKey := validateForm(
		m.form.inputs[fieldName].Value(),
		m.form.inputs[fieldCategory].Value(),
		m.form.inputs[fieldQuantity].Value(),
		m.form.inputs[fieldPrice].Value(),
	)
	if errKey != "" {
		m.form.errKey = errKey
		return m, nil
	}

	var status string
	if m.form.editID == 0 {
		created := m.store.Create(data)
		status = fmt.Sprintf(m.tr("status.created"), created.Name)
	} else if updated, ok := m.store.Update(m.form.editID, data); ok {
		status = fmt.Sprintf(m.tr("status.updated"), updated.Name)
	} else {
		// The record vanished underneath the form (deleted elsewhere).
		status = m.tr("status.notfound")
	}

	m.mode = modeList
	m.selected = m.clampSelected(m.selected)
	return m, m.setStatus(status)
}

// renderForm draws the create/edit form as a centered modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	title := m.tr("form.title.create")
	if m.form.editID != 0 {
		title = fmt.Sprintf(m.tr("form.title.edit"), m.form.editID)
	}

	labels := [fieldCount]string{
		m.tr("form.name"),
		m.tr("form.category"),
		m.tr("form.quantity"),
		m.tr("form.price"),
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")

	for i, in := range m.form.inputs {
		label := styles.MutedText.Render(labels[i])
		if i == m.form.focus {
			label = styles.AccentText.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.form.errKey != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.tr(m.form.errKey)))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(m.tr("form.submit")))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
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

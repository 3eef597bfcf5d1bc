package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"easel/internal/selection"
)

// bulkModal holds the bulk-select form state.
type bulkModal struct {
	inputs   [2]textinput.Model // count, start page
	focusIdx int
	errText  string
}

// newBulkModal builds the form with the start page prefilled from the page on
// screen.
func newBulkModal(currentPage int) *bulkModal {
	count := textinput.New()
	count.Placeholder = fmt.Sprintf("1-%d", selection.MaxBulkCount)
	count.CharLimit = 6
	count.Width = 12
	count.Focus()

	start := textinput.New()
	start.SetValue(strconv.Itoa(currentPage))
	start.CharLimit = 6
	start.Width = 12

	return &bulkModal{inputs: [2]textinput.Model{count, start}}
}

// validate parses the form. On success it returns (count, startPage, true);
// on failure it sets errText and returns false.
func (b *bulkModal) validate() (int, int, bool) {
	count, err := strconv.Atoi(strings.TrimSpace(b.inputs[0].Value()))
	if err != nil || count < 1 || count > selection.MaxBulkCount {
		b.errText = fmt.Sprintf("Count must be between 1 and %d", selection.MaxBulkCount)
		return 0, 0, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(b.inputs[1].Value()))
	if err != nil || start < 1 {
		b.errText = "Start page must be 1 or greater"
		return 0, 0, false
	}
	return count, start, true
}

func (b *bulkModal) setFocus(idx int) {
	b.focusIdx = idx
	for i := range b.inputs {
		if i == idx {
			b.inputs[i].Focus()
		} else {
			b.inputs[i].Blur()
		}
	}
}

// handleBulkKey processes keyboard input while the bulk modal is open.
func (m Model) handleBulkKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.bulk = nil
		return m, nil

	case "tab", "down":
		m.bulk.setFocus((m.bulk.focusIdx + 1) % len(m.bulk.inputs))
		return m, nil

	case "shift+tab", "up":
		m.bulk.setFocus((m.bulk.focusIdx + len(m.bulk.inputs) - 1) % len(m.bulk.inputs))
		return m, nil

	case "enter":
		count, start, ok := m.bulk.validate()
		if !ok {
			return m, nil
		}
		m.bulk = nil
		m.bulkRunning = true
		m.statusMsg = ""
		runCtx, cancel := context.WithCancel(m.ctx)
		m.bulkCancel = cancel
		return m, m.bulkSelectCmd(runCtx, start, count)
	}

	var cmd tea.Cmd
	m.bulk.inputs[m.bulk.focusIdx], cmd = m.bulk.inputs[m.bulk.focusIdx].Update(msg)
	m.bulk.errText = ""
	return m, cmd
}

// renderBulkModal renders the bulk-select form as a centered overlay.
func (m Model) renderBulkModal() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Bulk Select"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	labels := [2]string{"Rows to select", "Start page"}
	for i, input := range m.bulk.inputs {
		label := labels[i]
		labelStyle := styles.MutedText
		if i == m.bulk.focusIdx {
			labelStyle = styles.AccentText
		}
		b.WriteString(labelStyle.Width(16).Render(label))
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.bulk.errText != "" {
		b.WriteString(styles.DangerText.Render(m.bulk.errText))
	} else {
		b.WriteString(styles.FaintText.Render("enter: run · tab: next field · esc: cancel"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

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

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"easel/internal/selection"
)

// renderHeader renders the status bar with page position, totals, and the
// current selection count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 100

	var parts []string

	parts = append(parts, bg.Render("easel", styles.Logo))

	switch {
	case m.loading && !m.hasPage:
		parts = append(parts, bg.Render("Loading artworks...", styles.WarningText.Bold(true)))
	case m.lastError != nil:
		parts = append(parts,
			bg.Render("API "+classifyConnectionError(m.lastError), styles.DangerText.Bold(true)))
	}

	if m.hasPage {
		pageStr := fmt.Sprintf("%d", m.page)
		if m.totalPages > 0 {
			pageStr = fmt.Sprintf("%d/%s", m.page, formatCount(m.totalPages))
		}
		parts = append(parts,
			bg.Render("Page:", styles.MutedText)+bg.Space()+
				bg.Render(pageStr, styles.Text),
		)

		if m.totalRows > 0 {
			label := "Artworks:"
			if compact {
				label = "N:"
			}
			parts = append(parts,
				bg.Render(label, styles.MutedText)+bg.Space()+
					bg.Render(formatCount(m.totalRows), styles.Text),
			)
		}
	}

	selected := m.selection.Total()
	selStyle := styles.MutedText
	if selected > 0 {
		selStyle = styles.SuccessText
	}
	label := "Selected:"
	if compact {
		label = "S:"
	}
	parts = append(parts,
		bg.Render(label, styles.MutedText)+bg.Space()+
			bg.Render(formatCount(selected), selStyle),
	)

	if m.loading && m.hasPage {
		parts = append(parts, bg.Render("Loading...", styles.WarningText))
	}

	if m.bulkRunning {
		parts = append(parts, bg.Render("Bulk selecting...", styles.InfoText.Bold(true)))
	}

	if m.lastError != nil && m.hasPage {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(fmt.Sprintf("%v", m.lastError), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(errText, styles.DangerText),
		)
	}

	if m.statusMsg != "" {
		maxMsg := 80
		if compact {
			maxMsg = 40
		}
		parts = append(parts, bg.Render(truncate(m.statusMsg, maxMsg), styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"Space", "Select"},
		{"a/u", "Page all/none"},
		{"b", "Bulk"},
		{"C", "Clear"},
		{"h/l", "Page"},
		{"j/k", "Navigate"},
		{"r", "Refresh"},
		{"?", "Help"},
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// formatBulkStatus summarizes a finished bulk run for the status line.
func formatBulkStatus(res selection.BulkResult, err error) string {
	switch {
	case err == nil && res.CeilingHit:
		return fmt.Sprintf("Selected %s rows, stopped at the page scan limit", formatCount(res.Selected))
	case err == nil && res.Exhausted:
		return fmt.Sprintf("Selected %s rows, no more data after page %d", formatCount(res.Selected), res.LastPage)
	case err == nil:
		if res.StartPage == res.LastPage {
			return fmt.Sprintf("Selected %s rows on page %d", formatCount(res.Selected), res.LastPage)
		}
		return fmt.Sprintf("Selected %s rows (pages %d-%d)", formatCount(res.Selected), res.StartPage, res.LastPage)
	case errors.Is(err, context.Canceled):
		return fmt.Sprintf("Bulk selection cancelled, %s rows kept", formatCount(res.Selected))
	default:
		var fe *selection.FetchError
		if errors.As(err, &fe) {
			return fmt.Sprintf("Bulk selection stopped at page %d: %v (%s rows kept)",
				fe.Page, fe.Err, formatCount(res.Selected))
		}
		return fmt.Sprintf("Bulk selection failed: %v", err)
	}
}

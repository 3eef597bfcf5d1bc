package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"easel/internal/artic"
)

// renderBrowse renders the browse view with split layout (table + detail).
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // Account for header + cmdbar

	if !m.hasPage {
		var msg string
		if m.lastError != nil {
			msg = styles.DangerText.Render("Could not load artworks: " + truncate(m.lastError.Error(), 60))
		} else {
			msg = styles.MutedText.Render("Loading artworks...")
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	if len(m.pageData.Artworks) == 0 {
		emptyMsg := styles.MutedText.Render(fmt.Sprintf("Page %d is empty", m.pageData.Number))
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// Extra wide (>= 160): 60% table, 40% detail
	// Default: 55% table, 45% detail
	var tableWidth int
	if m.width >= 160 {
		tableWidth = m.width * 60 / 100
	} else {
		tableWidth = m.width * 55 / 100
	}
	detailWidth := m.width - tableWidth

	tableTitle := m.tableTitle()
	tableContent := m.renderTable(tableWidth-2, m.theme.SurfaceAlt)
	tablePane := m.renderTitledBox(tableTitle, tableContent, tableWidth, contentHeight, true)

	detailPane := m.renderTitledBox("Details", m.detailViewport.View(), detailWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, tablePane, detailPane)
}

// tableTitle returns the table pane title with page position.
func (m Model) tableTitle() string {
	if m.totalPages > 0 {
		return fmt.Sprintf("Artworks · Page %d of %s", m.pageData.Number, formatCount(m.totalPages))
	}
	return fmt.Sprintf("Artworks · Page %d", m.pageData.Number)
}

// renderTable renders the current page's artworks as styled rows.
func (m Model) renderTable(width int, bgColor string) string {
	arts := m.pageData.Artworks
	if len(arts) == 0 {
		return ""
	}

	bound := m.selection.Bind(m.pageData.Number)

	var lines []string
	for i, art := range arts {
		selected := bound.IsSelected(art.ID)
		if i == m.cursor {
			content := m.formatRowContent(art, width, m.theme.SelectionBg, selected, true)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		} else {
			content := m.formatRowContent(art, width, bgColor, selected, false)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// formatRowContent formats one artwork row with inline colors.
// Format: "✓ #ID Title · Artist"
// When highlighted is true, uses SelectionText color for all text to ensure contrast.
func (m Model) formatRowContent(art artic.Artwork, width int, bgColor string, selected, highlighted bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	marker := " "
	if selected {
		marker = "✓"
	}

	title := composeTitle(art)
	artist := composeArtist(art)
	idStr := fmt.Sprintf("#%d", art.ID)

	// marker + space + id + space + title + " · " + artist
	titleWidth := max(width-len(idStr)-len(artist)-8, 12)
	artistWidth := max(width-len(idStr)-min(len(title), titleWidth)-8, 10)

	var markerStyle, idStyle, titleStyle, sepStyle, artistStyle lipgloss.Style
	if highlighted {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		markerStyle = selText.Bold(true)
		idStyle = selText
		titleStyle = selText
		sepStyle = selText
		artistStyle = selText
	} else {
		markerStyle = styles.SuccessText
		idStyle = styles.MutedText
		titleStyle = styles.Text
		sepStyle = styles.FaintText
		artistStyle = styles.MutedText
	}

	markerPart := bg.Render(marker, markerStyle)
	if marker == " " {
		markerPart = bg.Space()
	}
	idPart := bg.Render(idStr, idStyle)
	titlePart := bg.Render(truncate(title, titleWidth), titleStyle)
	sepPart := bg.Render(" · ", sepStyle)
	artistPart := bg.Render(truncate(artist, artistWidth), artistStyle)

	return markerPart + bg.Space() + idPart + bg.Space() + titlePart + sepPart + artistPart
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
	} else {
		borderColorStr = m.theme.Border
	}
	bgColorStr := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := len([]rune(title))
	leftPad := (innerWidth - titleLen - 2) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

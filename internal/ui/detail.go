package ui

import (
	"fmt"
	"strings"

	"easel/internal/artic"
)

// resizeDetailViewport fits the detail viewport to the current layout.
func (m *Model) resizeDetailViewport() {
	var tableWidth int
	if m.width >= 160 {
		tableWidth = m.width * 60 / 100
	} else {
		tableWidth = m.width * 55 / 100
	}
	detailWidth := m.width - tableWidth

	m.detailViewport.Width = max(detailWidth-2, 0)
	m.detailViewport.Height = max(m.height-4, 0) // header + cmdbar + box borders
}

// updateDetailViewport rebuilds the detail pane content for the highlighted
// artwork.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	art := m.artworkUnderCursor()
	if art == nil {
		m.detailViewport.SetContent(m.theme.Styles().MutedText.Render(" Select an artwork"))
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(*art, m.detailViewport.Width))
}

// renderDetailContent formats the full artwork record plus its selection
// status.
func (m Model) renderDetailContent(art artic.Artwork, width int) string {
	styles := m.theme.Styles()
	labelWidth := 12
	valueWidth := max(width-labelWidth-2, 16)

	field := func(label, value string) string {
		if strings.TrimSpace(value) == "" {
			value = "—"
		}
		return " " + styles.FaintText.Width(labelWidth).Render(label) +
			styles.Text.Render(truncate(value, valueWidth))
	}

	var b strings.Builder

	b.WriteString(" " + styles.Text.Bold(true).Render(truncate(composeTitle(art), width-2)))
	b.WriteString("\n")
	b.WriteString(" " + styles.FaintText.Render(strings.Repeat("─", max(width-2, 1))))
	b.WriteString("\n\n")

	b.WriteString(field("Artist", art.ArtistDisplay))
	b.WriteString("\n")
	b.WriteString(field("Date", art.DateDisplay))
	b.WriteString("\n")
	b.WriteString(field("Medium", art.MediumDisplay))
	b.WriteString("\n")
	b.WriteString(field("Dimensions", art.Dimensions))
	b.WriteString("\n")
	b.WriteString(field("Origin", art.PlaceOfOrigin))
	b.WriteString("\n")
	b.WriteString(field("Department", art.DepartmentTitle))
	b.WriteString("\n")
	b.WriteString(field("ID", fmt.Sprintf("%d", art.ID)))
	b.WriteString("\n\n")

	bound := m.selection.Bind(m.pageData.Number)
	if bound.IsSelected(art.ID) {
		b.WriteString(" " + styles.SuccessText.Render("✓ Selected"))
	} else {
		b.WriteString(" " + styles.MutedText.Render("Not selected"))
	}
	b.WriteString("\n")
	b.WriteString(" " + styles.FaintText.Render(
		fmt.Sprintf("%s on this page · %s total",
			formatCount(bound.Count()), formatCount(m.selection.Total()))))

	return b.String()
}

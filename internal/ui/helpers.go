package ui

import (
	"fmt"
	"strings"

	"easel/internal/artic"
)

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	// Keep more of the end than the start
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}

// composeTitle builds the display title for an artwork.
func composeTitle(art artic.Artwork) string {
	if strings.TrimSpace(art.Title) != "" {
		return art.Title
	}
	return fmt.Sprintf("Untitled #%d", art.ID)
}

// composeArtist returns the artist line, or a placeholder when unknown.
func composeArtist(art artic.Artwork) string {
	if strings.TrimSpace(art.ArtistDisplay) != "" {
		return art.ArtistDisplay
	}
	return "Unknown artist"
}

// formatCount renders an integer with thousands separators, e.g. 129312 as
// "129,312".
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

package ui

import (
	"testing"

	"easel/internal/artic"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny max", "hello", 2, "he"},
		{"zero max", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"truncated keeps end", "abcdefghijklmnop", 10, "abc...mnop"},
		{"zero max", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateMiddle(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestComposeTitle(t *testing.T) {
	art := artic.Artwork{ID: 42, Title: "Nighthawks"}
	if got := composeTitle(art); got != "Nighthawks" {
		t.Errorf("composeTitle = %q, want %q", got, "Nighthawks")
	}

	blank := artic.Artwork{ID: 42, Title: "  "}
	if got := composeTitle(blank); got != "Untitled #42" {
		t.Errorf("composeTitle = %q, want %q", got, "Untitled #42")
	}
}

func TestComposeArtist(t *testing.T) {
	art := artic.Artwork{ArtistDisplay: "Edward Hopper\nAmerican, 1882–1967"}
	if got := composeArtist(art); got != art.ArtistDisplay {
		t.Errorf("composeArtist = %q, want %q", got, art.ArtistDisplay)
	}

	if got := composeArtist(artic.Artwork{}); got != "Unknown artist" {
		t.Errorf("composeArtist = %q, want %q", got, "Unknown artist")
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{129312, "129,312"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.in); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package artic

// Pagination mirrors the pagination block on every artworks response.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Artwork describes one record in transport-friendly form. The selection
// engine only ever looks at ID; the remaining fields exist for display.
type Artwork struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	ArtistDisplay   string `json:"artist_display"`
	DateDisplay     string `json:"date_display"`
	MediumDisplay   string `json:"medium_display"`
	Dimensions      string `json:"dimensions"`
	PlaceOfOrigin   string `json:"place_of_origin"`
	DepartmentTitle string `json:"department_title"`
}

// ArtworksResponse mirrors GET /api/v1/artworks.
type ArtworksResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
}

// Page is one fetched unit of server-side pagination.
type Page struct {
	Number     int
	Artworks   []Artwork
	Pagination Pagination
}

// IDs returns the row identifiers on this page in server order.
func (p Page) IDs() []int {
	ids := make([]int, 0, len(p.Artworks))
	for _, a := range p.Artworks {
		ids = append(ids, a.ID)
	}
	return ids
}

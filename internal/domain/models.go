package domain

// Artwork represents one catalog record
type Artwork struct {
	ID            int64
	Title         string
	PlaceOfOrigin string
	ArtistDisplay string
	DateStart     int
	DateEnd       int
}

// Page represents one fetched batch of artworks plus the catalog's
// total count as of that fetch
type Page struct {
	Number     int // 1-based
	Artworks   []Artwork
	TotalCount int
}

// HasArtworks reports whether the page contains any records
func (p *Page) HasArtworks() bool {
	return p != nil && len(p.Artworks) > 0
}

// FetchProgress represents the current loading state shown in the UI
type FetchProgress struct {
	IsLoading   bool
	CurrentPage int
}

package pages

import "artshelf/internal/domain"

// State holds pagination state. The record slice is replaced wholesale on
// each successful load; a failed load keeps the prior records in place.
type State struct {
	CurrentPage int
	TotalCount  int
	Artworks    []domain.Artwork
	Loading     bool
	LastError   string
}

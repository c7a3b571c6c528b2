// Package pages owns the current page number, the records for that page and
// the total count reported by the catalog. Navigation publishes a fetch
// request on the bus; the completion arrives later as a PageLoaded or
// PageLoadFailed event applied back onto the store.
package pages

import (
	"github.com/sirupsen/logrus"

	"artshelf/internal/domain"
	"artshelf/internal/eventbus"
)

// Service handles pagination state
type Service struct {
	state    *State
	bus      eventbus.EventBus
	pageSize int
}

// NewService creates a new page store
func NewService(bus eventbus.EventBus, pageSize int) *Service {
	return &Service{
		state: &State{
			CurrentPage: 1,
		},
		bus:      bus,
		pageSize: pageSize,
	}
}

// GoToPage navigates to a 1-based page and requests its contents. The
// generation stamp travels with the request so the bulk controller can
// recognize completions that belong to a superseded fill.
func (s *Service) GoToPage(n int, generation uint64) {
	if n < 1 {
		return
	}

	s.state.CurrentPage = n
	s.state.Loading = true
	s.state.LastError = ""

	s.bus.Publish(eventbus.PageRequestedEvent{
		PageNumber: n,
		Generation: generation,
	})
}

// NextPage advances one page if a further page exists
func (s *Service) NextPage(generation uint64) {
	if s.HasNext() {
		s.GoToPage(s.state.CurrentPage+1, generation)
	}
}

// PrevPage goes back one page
func (s *Service) PrevPage(generation uint64) {
	if s.state.CurrentPage > 1 {
		s.GoToPage(s.state.CurrentPage-1, generation)
	}
}

// ApplyLoaded replaces the held records with a freshly loaded page.
// A completion for a page the user has already navigated away from is
// dropped; the in-flight fetch for the current page is still pending.
func (s *Service) ApplyLoaded(page *domain.Page) {
	if page == nil {
		return
	}
	if page.Number != s.state.CurrentPage {
		logrus.WithFields(logrus.Fields{
			"loaded":  page.Number,
			"current": s.state.CurrentPage,
		}).Debug("dropping stale page load")
		return
	}

	s.state.Artworks = page.Artworks
	s.state.TotalCount = page.TotalCount
	s.state.Loading = false
	s.state.LastError = ""
}

// ApplyFailed records a fetch failure. Prior records stay in place.
func (s *Service) ApplyFailed(pageNumber int, err error) {
	if pageNumber == s.state.CurrentPage {
		s.state.Loading = false
	}
	if err != nil {
		s.state.LastError = err.Error()
	}
	logrus.WithError(err).WithField("page", pageNumber).Warn("keeping prior page contents")
}

// CurrentPage returns the 1-based current page number
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalCount returns the catalog's total record count as of the last fetch
func (s *Service) TotalCount() int {
	return s.state.TotalCount
}

// Artworks returns the records of the current page
func (s *Service) Artworks() []domain.Artwork {
	return s.state.Artworks
}

// Loading reports whether a fetch for the current page is outstanding
func (s *Service) Loading() bool {
	return s.state.Loading
}

// LastError returns the most recent fetch failure, "" when the last fetch
// succeeded
func (s *Service) LastError() string {
	return s.state.LastError
}

// HasNext reports whether a page beyond the current one exists
func (s *Service) HasNext() bool {
	return s.state.CurrentPage*s.pageSize < s.state.TotalCount
}

// TotalPages returns the page count implied by the last seen total
func (s *Service) TotalPages() int {
	if s.state.TotalCount == 0 {
		return 1
	}
	return (s.state.TotalCount + s.pageSize - 1) / s.pageSize
}

// PageSize returns the fixed page size
func (s *Service) PageSize() int {
	return s.pageSize
}

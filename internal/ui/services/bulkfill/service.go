// Package bulkfill implements the cross-page bulk-selection controller: given
// a target count it marks artworks as selected page by page, as successive
// pages load, until the target is met or the catalog is exhausted.
//
// Transitions run on the Bubble Tea update loop, one event at a time, and
// return effects for the host to execute once the transition is complete.
// Requesting the next page only after the current absorption finished is what
// keeps page loads arriving in request order.
package bulkfill

import (
	"github.com/sirupsen/logrus"

	"artshelf/internal/domain"
	"artshelf/internal/eventbus"
)

// SelectionSet is the membership contract the controller mutates
type SelectionSet interface {
	Contains(id int64) bool
	AddMany(ids []int64)
	Clear()
	Size() int
}

// Service is the bulk-selection controller
type Service struct {
	state    State
	sel      SelectionSet
	bus      eventbus.EventBus
	pageSize int
}

// NewService creates a new bulk-fill controller
func NewService(sel SelectionSet, bus eventbus.EventBus, pageSize int) *Service {
	return &Service{
		sel:      sel,
		bus:      bus,
		pageSize: pageSize,
	}
}

// State returns a copy of the current controller state
func (s *Service) State() State {
	return s.state
}

// Filling reports whether a fill is in progress
func (s *Service) Filling() bool {
	return s.state.Phase == PhaseFilling
}

// Generation returns the current fill generation
func (s *Service) Generation() uint64 {
	return s.state.Generation
}

// Start begins a fill for target records. "Select N" means select exactly
// the first N encountered from the current page onward, so any previous
// selection is discarded first. The target is validated by the caller
// (1 <= target <= totalCount); Start trusts it.
//
// If the current page is already loaded it is absorbed immediately; the
// returned effects then carry the follow-up page request, if any.
func (s *Service) Start(target int, current *domain.Page) []Effect {
	s.sel.Clear()
	s.state = State{
		Phase:      PhaseFilling,
		Target:     target,
		Remaining:  target,
		Generation: s.state.Generation + 1,
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.BulkStartedEvent{
			Target:     target,
			Generation: s.state.Generation,
		})
	}

	logrus.WithFields(logrus.Fields{
		"target":     target,
		"generation": s.state.Generation,
	}).Info("bulk fill started")

	if current.HasArtworks() {
		return s.Absorb(current, s.state.Generation)
	}
	return nil
}

// Absorb applies a freshly loaded page to the in-progress fill. Unselected
// records are taken in page order until the target is met; if records remain
// to be selected and a further page exists, a RequestPage effect is returned.
//
// Loads requested by an earlier fill carry that fill's generation and are
// ignored. Generation 0 marks loads the user navigated to directly; those
// are always absorbable while filling.
func (s *Service) Absorb(page *domain.Page, generation uint64) []Effect {
	if s.state.Phase != PhaseFilling || s.state.Remaining <= 0 {
		return nil
	}
	if generation != 0 && generation != s.state.Generation {
		logrus.WithFields(logrus.Fields{
			"got":     generation,
			"current": s.state.Generation,
		}).Debug("ignoring absorb for superseded fill")
		return nil
	}
	if !page.HasArtworks() {
		return nil
	}

	take := make([]int64, 0, s.state.Remaining)
	for _, art := range page.Artworks {
		if len(take) == s.state.Remaining {
			break
		}
		if !s.sel.Contains(art.ID) {
			take = append(take, art.ID)
		}
	}
	s.sel.AddMany(take)
	s.state.Remaining -= len(take)

	if s.state.Remaining == 0 {
		s.finish()
		return nil
	}

	if page.Number*s.pageSize < page.TotalCount {
		return []Effect{RequestPage{
			PageNumber: page.Number + 1,
			Generation: s.state.Generation,
		}}
	}

	// Target exceeds the catalog; selecting everything available is the
	// terminal condition, not an error.
	s.finish()
	return nil
}

// ManualToggle stops the fill when the user toggles a record by hand while
// Filling. The toggle itself is applied by the caller; the controller only
// transitions to Idle so it never contradicts the explicit choice.
func (s *Service) ManualToggle() {
	if s.state.Phase != PhaseFilling {
		return
	}
	logrus.WithField("remaining", s.state.Remaining).Info("bulk fill stopped by manual toggle")
	s.finish()
}

// ClearAll discards the selection and any in-progress fill. Safe to call
// repeatedly.
func (s *Service) ClearAll() {
	s.sel.Clear()
	if s.state.Phase == PhaseFilling {
		s.finish()
		return
	}
	// Bump the generation even when idle so an absorb from a fetch that was
	// in flight at clear time cannot resurrect stale work.
	s.state = State{Generation: s.state.Generation + 1}
}

func (s *Service) finish() {
	gen := s.state.Generation
	s.state = State{Generation: gen + 1}

	if s.bus != nil {
		s.bus.Publish(eventbus.BulkFinishedEvent{
			Selected:   s.sel.Size(),
			Generation: gen,
		})
	}
}

// Package selection tracks which artwork IDs are selected. Membership is
// identifier-based and survives page navigation, unlike the page contents.
package selection

import (
	"artshelf/internal/eventbus"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			SelectedIDs: make(map[int64]bool),
		},
		bus: bus,
	}
}

// Add marks an artwork as selected
func (s *Service) Add(id int64) {
	if s.state.SelectedIDs[id] {
		return
	}
	s.state.SelectedIDs[id] = true
	s.publishChanged([]int64{id}, nil)
}

// Remove unmarks an artwork
func (s *Service) Remove(id int64) {
	if !s.state.SelectedIDs[id] {
		return
	}
	delete(s.state.SelectedIDs, id)
	s.publishChanged(nil, []int64{id})
}

// Toggle flips the selection state of an artwork and reports whether it is
// now selected
func (s *Service) Toggle(id int64) bool {
	if s.state.SelectedIDs[id] {
		delete(s.state.SelectedIDs, id)
		s.publishChanged(nil, []int64{id})
		return false
	}
	s.state.SelectedIDs[id] = true
	s.publishChanged([]int64{id}, nil)
	return true
}

// AddMany marks several artworks as selected in one change event,
// skipping IDs that are already members
func (s *Service) AddMany(ids []int64) {
	var added []int64
	for _, id := range ids {
		if !s.state.SelectedIDs[id] {
			s.state.SelectedIDs[id] = true
			added = append(added, id)
		}
	}
	if len(added) > 0 {
		s.publishChanged(added, nil)
	}
}

// Contains checks if an artwork is selected
func (s *Service) Contains(id int64) bool {
	return s.state.SelectedIDs[id]
}

// Clear discards all membership unconditionally
func (s *Service) Clear() {
	s.state.SelectedIDs = make(map[int64]bool)

	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionClearedEvent{})
	}
}

// Size returns the number of selected artworks
func (s *Service) Size() int {
	return len(s.state.SelectedIDs)
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return len(s.state.SelectedIDs) > 0
}

// Selected returns all selected IDs in unspecified order
func (s *Service) Selected() []int64 {
	ids := make([]int64, 0, len(s.state.SelectedIDs))
	for id := range s.state.SelectedIDs {
		ids = append(ids, id)
	}
	return ids
}

func (s *Service) publishChanged(added, removed []int64) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.SelectedIDs),
	})
}

package ui

import (
	"artshelf/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// initialPageMsg triggers the first page fetch once the program is running
type initialPageMsg struct {
	pageNumber int
}

// detailPagerMsg contains the result of running the artwork detail pager
type detailPagerMsg struct {
	err error
}

// helpPagerMsg contains the result of running the help pager
type helpPagerMsg struct {
	err error
}

// statusClearMsg clears a transient status message
type statusClearMsg struct {
	seq int
}

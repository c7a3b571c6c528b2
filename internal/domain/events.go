package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageRequested    EventType = "PageRequested"
	EventPageLoaded       EventType = "PageLoaded"
	EventPageLoadFailed   EventType = "PageLoadFailed"
	EventBulkStarted      EventType = "BulkStarted"
	EventBulkFinished     EventType = "BulkFinished"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageRequestedEvent is emitted when a page fetch should begin.
// Generation identifies the bulk fill that issued the request, so a
// completion arriving after that fill was superseded can be recognized.
// User-initiated navigation carries generation 0.
type PageRequestedEvent struct {
	PageNumber int
	Generation uint64
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// PageLoadedEvent is emitted when a page fetch completes successfully
type PageLoadedEvent struct {
	Page       *Page
	Generation uint64
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageLoadFailedEvent is emitted when a page fetch fails
type PageLoadFailedEvent struct {
	PageNumber int
	Generation uint64
	Err        error
}

func (e PageLoadFailedEvent) Type() EventType { return EventPageLoadFailed }

// BulkStartedEvent is emitted when a bulk-selection fill begins
type BulkStartedEvent struct {
	Target     int
	Generation uint64
}

func (e BulkStartedEvent) Type() EventType { return EventBulkStarted }

// BulkFinishedEvent is emitted when a bulk-selection fill reaches Idle
type BulkFinishedEvent struct {
	Selected   int
	Generation uint64
}

func (e BulkFinishedEvent) Type() EventType { return EventBulkFinished }

// SelectionChangedEvent is emitted when membership of the selection set changes
type SelectionChangedEvent struct {
	Added   []int64
	Removed []int64
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the selection set is emptied
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL  string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

package bulkfill

// Phase is the controller's state
type Phase int

const (
	// PhaseIdle means no fill is in progress
	PhaseIdle Phase = iota
	// PhaseFilling means a fill is in progress with Remaining > 0
	PhaseFilling
)

func (p Phase) String() string {
	if p == PhaseFilling {
		return "filling"
	}
	return "idle"
}

// State holds the controller state. Generation increments whenever a fill
// starts or is abandoned, so completions belonging to a superseded fill can
// be recognized and dropped.
type State struct {
	Phase      Phase
	Target     int // requested count, for progress display
	Remaining  int // records still to be auto-selected
	Generation uint64
}

// Effect is a declarative instruction produced by a transition and executed
// by the host afterwards
type Effect interface {
	effect()
}

// RequestPage asks the host to navigate the page store to a further page
type RequestPage struct {
	PageNumber int
	Generation uint64
}

func (RequestPage) effect() {}

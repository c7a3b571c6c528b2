package selection

// State holds selection state
type State struct {
	SelectedIDs map[int64]bool
}

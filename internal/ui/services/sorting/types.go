package sorting

import "pupfinder/internal/domain"

// State holds sorting state
type State struct {
	CurrentKey domain.SortKey
}

// Event types
type SortKeyChangedEvent struct {
	OldKey domain.SortKey
	NewKey domain.SortKey
}

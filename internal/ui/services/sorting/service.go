package sorting

import (
	"pupfinder/internal/domain"
	"pupfinder/internal/ui/services/events"
)

// Service owns the sort key used by searches
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new sorting service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			CurrentKey: domain.DefaultSortKey,
		},
		bus: bus,
	}
}

// GetCurrentKey returns the current sort key
func (s *Service) GetCurrentKey() domain.SortKey {
	return s.state.CurrentKey
}

// SetKey sets the sort key
func (s *Service) SetKey(key domain.SortKey) {
	if key == s.state.CurrentKey {
		return
	}

	oldKey := s.state.CurrentKey
	s.state.CurrentKey = key

	s.bus.Publish(SortKeyChangedEvent{
		OldKey: oldKey,
		NewKey: key,
	})
}

// Toggle flips between ascending and descending breed order
func (s *Service) Toggle() domain.SortKey {
	s.SetKey(s.state.CurrentKey.Toggle())
	return s.state.CurrentKey
}

// Reset restores the default key without publishing
func (s *Service) Reset() {
	s.state.CurrentKey = domain.DefaultSortKey
}

// GetKeyString returns a short label for the status bar
func (s *Service) GetKeyString() string {
	return s.state.CurrentKey.Label()
}

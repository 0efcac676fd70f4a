package selection

import (
	"pupfinder/internal/ui/services/events"
)

// Service tracks the dogs marked as favorites. Favorites survive searches
// and page changes; they are only cleared on logout.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new favorites service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Favorites: make(map[string]bool),
		},
		bus: bus,
	}
}

// Toggle adds id when absent and removes it when present. Any id is
// accepted, including ones not on the current page.
func (s *Service) Toggle(id string) bool {
	var added, removed []string

	if s.state.Favorites[id] {
		delete(s.state.Favorites, id)
		s.removeFromOrder(id)
		removed = append(removed, id)
	} else {
		s.state.Favorites[id] = true
		s.state.Order = append(s.state.Order, id)
		added = append(added, id)
	}

	s.bus.Publish(FavoritesChangedEvent{
		Added:   added,
		Removed: removed,
		Total:   len(s.state.Order),
	})

	return s.state.Favorites[id]
}

func (s *Service) removeFromOrder(id string) {
	for i, existing := range s.state.Order {
		if existing == id {
			s.state.Order = append(s.state.Order[:i], s.state.Order[i+1:]...)
			return
		}
	}
}

// Clear empties the set
func (s *Service) Clear() {
	s.state.Favorites = make(map[string]bool)
	s.state.Order = nil

	s.bus.Publish(FavoritesClearedEvent{})
}

// IsFavorite checks if a dog is a favorite
func (s *Service) IsFavorite(id string) bool {
	return s.state.Favorites[id]
}

// IDs returns favorites in the order they were added
func (s *Service) IDs() []string {
	return append([]string(nil), s.state.Order...)
}

// Count returns the number of favorites
func (s *Service) Count() int {
	return len(s.state.Order)
}

// HasFavorites returns true if anything is marked
func (s *Service) HasFavorites() bool {
	return len(s.state.Order) > 0
}

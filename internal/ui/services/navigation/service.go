package navigation

import (
	"pupfinder/internal/ui/services/events"
)

// cardHeight is the number of terminal rows one dog card takes
const cardHeight = 2

// chromeRows is reserved for the header, filter bar, status and help lines
const chromeRows = 10

// Service handles the card cursor
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			ViewportHeight: 10, // updated on first resize
		},
		bus: bus,
	}
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible card
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns how many cards fit on screen
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight converts a terminal height in rows to cards
func (s *Service) SetViewportHeight(rows int) {
	cards := (rows - chromeRows) / cardHeight
	if cards < 1 {
		cards = 1
	}
	s.state.ViewportHeight = cards
	s.ensureVisible()
}

// SetCount sets the number of cards and resets the cursor to the top.
// Called whenever a new page is applied.
func (s *Service) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Count = n
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.pageStep())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageStep())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.clampIndex(s.state.Count - 1)
	}
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// VisibleRange returns the half-open range of cards on screen
func (s *Service) VisibleRange() (start, end int) {
	start = s.state.ViewportOffset
	end = start + s.state.ViewportHeight
	if end > s.state.Count {
		end = s.state.Count
	}
	if start > end {
		start = end
	}
	return start, end
}

func (s *Service) pageStep() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	if index >= s.state.Count {
		index = s.state.Count - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	offset := s.state.ViewportOffset
	if s.state.Cursor < offset {
		offset = s.state.Cursor
	} else if s.state.Cursor >= offset+s.state.ViewportHeight {
		offset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if offset == s.state.ViewportOffset {
		return
	}
	s.state.ViewportOffset = offset
	s.bus.Publish(ViewportChangedEvent{
		Offset: offset,
		Height: s.state.ViewportHeight,
	})
}

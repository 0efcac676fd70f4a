package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pupfinder/internal/ui/services/events"
)

func TestNavigateStaysInBounds(t *testing.T) {
	s := NewService(nil)
	s.SetCount(3)

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.GetCursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, 2, s.GetCursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.GetCursor())
	s.Navigate(DirectionEnd)
	assert.Equal(t, 2, s.GetCursor())
}

func TestEmptyPage(t *testing.T) {
	s := NewService(nil)
	s.SetCount(0)
	s.Navigate(DirectionEnd)
	s.Navigate(DirectionDown)
	assert.Equal(t, 0, s.GetCursor())

	start, end := s.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestViewportFollowsCursor(t *testing.T) {
	rec := &events.Recorder{}
	s := NewService(rec)
	s.SetViewportHeight(chromeRows + 3*cardHeight)
	assert.Equal(t, 3, s.GetViewportHeight())

	s.SetCount(10)
	s.Navigate(DirectionEnd)
	assert.Equal(t, 9, s.GetCursor())
	assert.Equal(t, 7, s.GetViewportOffset())

	start, end := s.VisibleRange()
	assert.Equal(t, 7, start)
	assert.Equal(t, 10, end)

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 7, s.GetCursor())

	assert.Contains(t, rec.Events(), ViewportChangedEvent{Offset: 7, Height: 3})
}

func TestSetCountResetsCursor(t *testing.T) {
	s := NewService(nil)
	s.SetCount(10)
	s.Navigate(DirectionEnd)
	s.SetCount(4)
	assert.Equal(t, 0, s.GetCursor())
	assert.Equal(t, 0, s.GetViewportOffset())
}

package state

import (
	"pupfinder/internal/domain"
)

// AppState contains the UI state that no service owns
type AppState struct {
	// Terminal size
	Width  int
	Height int

	// Search form. Paging reuses the filter the search service was last
	// given; this is what the form currently shows.
	Filter domain.Filter
	Breeds []string

	// Notices
	InlineNotice string         // shown under the login form
	Notice       *domain.Notice // blocking popup, nil when none

	// Operation states
	LoggingIn  bool
	LoggingOut bool

	// UI state
	BreedIndex    int    // highlighted row in the breed picker
	StatusMessage string // status bar message
	ShowImages    bool   // show image URLs on cards
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ShowImages: true,
	}
}

// SetNotice routes a notice by level. Silent notices are only logged, by
// whoever produced them.
func (s *AppState) SetNotice(n *domain.Notice) {
	if n == nil {
		return
	}
	switch n.Level {
	case domain.NoticeBlocking:
		s.Notice = n
	case domain.NoticeInline:
		s.InlineNotice = n.Text
	}
}

// HasBlockingNotice reports whether a popup is waiting to be dismissed
func (s *AppState) HasBlockingNotice() bool {
	return s.Notice != nil
}

// DismissNotice closes the popup
func (s *AppState) DismissNotice() {
	s.Notice = nil
}

// ResetSearchView restores everything shown on the search view to its
// initial value. Called when the session ends.
func (s *AppState) ResetSearchView() {
	s.Filter = domain.Filter{}
	s.Breeds = nil
	s.BreedIndex = 0
	s.StatusMessage = ""
}

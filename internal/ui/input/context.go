package input

import (
	"pupfinder/internal/ui/services/match"
	"pupfinder/internal/ui/services/navigation"
	"pupfinder/internal/ui/services/search"
	"pupfinder/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Search *search.Service
	Nav    *navigation.Service
	Match  *match.Service
}

// CurrentIndex returns the card under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Nav.GetCursor()
}

// TotalItems returns the number of cards on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.Search.Dogs())
}

// CurrentDogID returns the ID of the dog under the cursor, or ""
func (c *ModelContext) CurrentDogID() string {
	dogs := c.Search.Dogs()
	i := c.CurrentIndex()
	if i < 0 || i >= len(dogs) {
		return ""
	}
	return dogs[i].ID
}

// HasMatch reports whether a match has been found
func (c *ModelContext) HasMatch() bool {
	return c.Match.Matched() != nil
}

// Breeds returns the breed list loaded at login
func (c *ModelContext) Breeds() []string {
	return c.State.Breeds
}

// CurrentBreed returns the breed in the search form
func (c *ModelContext) CurrentBreed() string {
	return c.State.Filter.Breed
}

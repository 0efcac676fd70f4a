package search

import (
	"net/url"

	"pupfinder/internal/domain"
)

// State holds the search view's results and paging
type State struct {
	Filter      domain.Filter // filter of the page on screen, reused by paging
	Dogs        []domain.Dog  // current page, in resultIds order
	Total       int
	TotalPages  int
	CurrentPage int
	Searched    bool // a page has been applied since the last reset
}

// Request is one issued search. Seq increases with every request so that
// late responses can be told apart from the latest one.
type Request struct {
	Seq    uint64
	Page   int
	Filter domain.Filter // becomes the applied filter on success
	Params url.Values
}

// Result is what Fetch produced for a Request
type Result struct {
	Request Request
	Page    domain.SearchPage
	Dogs    []domain.Dog
	Err     error
}

// Event types
type SearchIssuedEvent struct {
	Seq  uint64
	Page int
}

type PageLoadedEvent struct {
	Page       int
	TotalPages int
	Total      int
	Count      int
}

type SearchFailedEvent struct {
	Page int
	Err  error
}

type StaleResultDiscardedEvent struct {
	Seq    uint64
	Latest uint64
}

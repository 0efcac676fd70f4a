package search

import (
	"context"
	"fmt"

	"pupfinder/internal/domain"
	"pupfinder/internal/logging"
	"pupfinder/internal/logic"
	"pupfinder/internal/ui/services/events"
	"pupfinder/internal/ui/services/query"
	"pupfinder/internal/ui/services/sorting"
)

// Service is the search and pagination controller.
//
// Requests are built on the UI goroutine (Search, NextPage, PrevPage,
// ToggleSort), performed elsewhere with Fetch, and handed back to Apply.
// Only the most recently issued request is ever applied.
type Service struct {
	state   *State
	bus     events.EventBus
	sorting *sorting.Service
	store   logic.DogStore
	seq     uint64
	pending bool
	reload  bool // the applied page fell past the last page
}

// NewService creates a new search service
func NewService(bus events.EventBus, sortSvc *sorting.Service, store logic.DogStore) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if sortSvc == nil {
		sortSvc = sorting.NewService(bus)
	}
	if store == nil {
		store = logic.NewMemoryDogStore()
	}
	return &Service{
		state:   initialState(),
		bus:     bus,
		sorting: sortSvc,
		store:   store,
	}
}

func initialState() *State {
	return &State{
		TotalPages:  1,
		CurrentPage: 1,
	}
}

// Search issues a request for page of filter using the current sort key.
// The filter replaces the applied one only when the result is applied.
func (s *Service) Search(filter domain.Filter, page int) Request {
	if page < 1 {
		page = 1
	}
	return s.issue(filter, page)
}

func (s *Service) issue(filter domain.Filter, page int) Request {
	s.seq++
	s.pending = true
	s.reload = false

	req := Request{
		Seq:    s.seq,
		Page:   page,
		Filter: filter,
		Params: query.Build(filter, s.sorting.GetCurrentKey(), page),
	}

	s.bus.Publish(SearchIssuedEvent{Seq: req.Seq, Page: page})
	return req
}

// NextPage requests the following page. ok is false on the last page.
func (s *Service) NextPage() (Request, bool) {
	if s.state.CurrentPage >= s.state.TotalPages {
		return Request{}, false
	}
	return s.issue(s.state.Filter, s.state.CurrentPage+1), true
}

// PrevPage requests the preceding page. ok is false on the first page.
func (s *Service) PrevPage() (Request, bool) {
	if s.state.CurrentPage <= 1 {
		return Request{}, false
	}
	return s.issue(s.state.Filter, s.state.CurrentPage-1), true
}

// ToggleSort flips the sort key. A page 1 search is returned only when
// results are already on screen.
func (s *Service) ToggleSort() (Request, bool) {
	s.sorting.Toggle()
	if len(s.state.Dogs) == 0 {
		return Request{}, false
	}
	return s.issue(s.state.Filter, 1), true
}

// Reload returns a request for the current page when the last applied
// result asked for a page past the end, e.g. because the total shrank.
func (s *Service) Reload() (Request, bool) {
	if !s.reload {
		return Request{}, false
	}
	return s.issue(s.state.Filter, s.state.CurrentPage), true
}

// Fetch performs the search and resolves the returned IDs in one batch.
// It does not touch service state and is safe to run off the UI goroutine.
func Fetch(ctx context.Context, catalog logic.Catalog, req Request) Result {
	res := Result{Request: req}

	resp, err := catalog.Search(ctx, req.Params)
	if err != nil {
		res.Err = fmt.Errorf("search page %d: %w", req.Page, err)
		return res
	}
	res.Page = domain.SearchPage{IDs: resp.ResultIDs, Total: resp.Total, Page: req.Page}

	if len(resp.ResultIDs) == 0 {
		return res
	}

	dogs, err := catalog.Dogs(ctx, resp.ResultIDs)
	if err != nil {
		res.Err = fmt.Errorf("resolve %d dogs: %w", len(resp.ResultIDs), err)
		return res
	}
	res.Dogs = dogs
	return res
}

// Apply stores a fetched result. It returns false when the result was
// discarded, either as stale or failed. A failed latest request leaves the
// previous page in place and yields a silent notice.
func (s *Service) Apply(res Result) (bool, *domain.Notice) {
	if res.Request.Seq != s.seq {
		logging.Debug("discarding stale search result", "seq", res.Request.Seq, "latest", s.seq)
		s.bus.Publish(StaleResultDiscardedEvent{Seq: res.Request.Seq, Latest: s.seq})
		return false, nil
	}
	s.pending = false

	if res.Err != nil {
		logging.Warn("search failed", "page", res.Request.Page, "err", res.Err)
		s.bus.Publish(SearchFailedEvent{Page: res.Request.Page, Err: res.Err})
		return false, &domain.Notice{Level: domain.NoticeSilent, Text: "search failed", Err: res.Err}
	}

	dogs := OrderByIDs(res.Page.IDs, res.Dogs)
	s.store.AddDogs(dogs...)

	s.state.Filter = res.Request.Filter
	s.state.Dogs = dogs
	s.state.Total = res.Page.Total
	s.state.TotalPages = domain.TotalPages(res.Page.Total)
	s.state.CurrentPage = res.Request.Page
	if s.state.CurrentPage > s.state.TotalPages {
		// Total shrank since the request was issued
		s.state.CurrentPage = s.state.TotalPages
		s.reload = s.state.Total > 0
	}
	s.state.Searched = true

	s.bus.Publish(PageLoadedEvent{
		Page:       s.state.CurrentPage,
		TotalPages: s.state.TotalPages,
		Total:      s.state.Total,
		Count:      len(dogs),
	})
	return true, nil
}

// OrderByIDs returns dogs in ids order. Records whose id is not listed are
// kept at the end in the order they arrived.
func OrderByIDs(ids []string, dogs []domain.Dog) []domain.Dog {
	byID := make(map[string]domain.Dog, len(dogs))
	for _, d := range dogs {
		byID[d.ID] = d
	}

	ordered := make([]domain.Dog, 0, len(dogs))
	used := make(map[string]bool, len(dogs))
	for _, id := range ids {
		if d, ok := byID[id]; ok && !used[id] {
			ordered = append(ordered, d)
			used[id] = true
		}
	}
	for _, d := range dogs {
		if !used[d.ID] {
			ordered = append(ordered, d)
			used[d.ID] = true
		}
	}
	return ordered
}

// Reset returns to the initial state and invalidates in-flight requests
func (s *Service) Reset() {
	s.state = initialState()
	s.seq++
	s.pending = false
	s.reload = false
	s.sorting.Reset()
	s.store.Clear()
}

// Dogs returns the current page
func (s *Service) Dogs() []domain.Dog {
	return s.state.Dogs
}

// Dog looks up any record seen since login
func (s *Service) Dog(id string) (domain.Dog, bool) {
	return s.store.GetDog(id)
}

// Filter returns the filter of the page on screen
func (s *Service) Filter() domain.Filter {
	return s.state.Filter
}

// CurrentPage returns the 1-based page on screen
func (s *Service) CurrentPage() int {
	return s.state.CurrentPage
}

// TotalPages returns the page count of the last applied search
func (s *Service) TotalPages() int {
	return s.state.TotalPages
}

// Total returns the server-side match count
func (s *Service) Total() int {
	return s.state.Total
}

// SortKey returns the key the next request will use
func (s *Service) SortKey() domain.SortKey {
	return s.sorting.GetCurrentKey()
}

// Loading reports whether the latest request is still outstanding
func (s *Service) Loading() bool {
	return s.pending
}

// Searched reports whether any page has been applied since the last reset
func (s *Service) Searched() bool {
	return s.state.Searched
}

// HasPrev and HasNext report whether paging is possible
func (s *Service) HasPrev() bool { return s.state.CurrentPage > 1 }
func (s *Service) HasNext() bool { return s.state.CurrentPage < s.state.TotalPages }

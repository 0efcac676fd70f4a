package match

import (
	"context"
	"fmt"

	"pupfinder/internal/domain"
	"pupfinder/internal/logging"
	"pupfinder/internal/logic"
	"pupfinder/internal/ui/services/events"
)

// Service submits favorites for a match and keeps the matched dog
type Service struct {
	state   *State
	bus     events.EventBus
	seq     uint64
	pending bool
}

// NewService creates a new match service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Generate issues a match request for favorites. With no favorites nothing
// is issued and a blocking notice is returned instead.
func (s *Service) Generate(favorites []string) (Request, *domain.Notice) {
	if len(favorites) == 0 {
		return Request{}, &domain.Notice{Level: domain.NoticeBlocking, Text: domain.NoticeNoFavorites}
	}

	s.seq++
	s.pending = true
	req := Request{
		Seq:       s.seq,
		Favorites: append([]string(nil), favorites...),
	}

	s.bus.Publish(MatchIssuedEvent{Seq: req.Seq, Favorites: len(favorites)})
	return req, nil
}

// Fetch asks for a match and resolves the returned id with a singleton
// batch lookup. It does not touch service state.
func Fetch(ctx context.Context, catalog logic.Catalog, req Request) Result {
	res := Result{Request: req}

	id, err := catalog.Match(ctx, req.Favorites)
	if err != nil {
		res.Err = fmt.Errorf("match %d favorites: %w", len(req.Favorites), err)
		return res
	}

	dogs, err := catalog.Dogs(ctx, []string{id})
	if err != nil {
		res.Err = fmt.Errorf("resolve match %s: %w", id, err)
		return res
	}
	if len(dogs) == 0 {
		res.Err = fmt.Errorf("resolve match %s: no record returned", id)
		return res
	}

	res.Dog = dogs[0]
	return res
}

// Apply stores the matched dog. Stale results are dropped without a notice;
// failures keep the previous match and return a blocking notice.
func (s *Service) Apply(res Result) (bool, *domain.Notice) {
	if res.Request.Seq != s.seq {
		logging.Debug("discarding stale match result", "seq", res.Request.Seq, "latest", s.seq)
		return false, nil
	}
	s.pending = false

	if res.Err != nil {
		logging.Error("match failed", "err", res.Err)
		s.bus.Publish(MatchFailedEvent{Err: res.Err})
		return false, &domain.Notice{Level: domain.NoticeBlocking, Text: domain.NoticeMatchFailed, Err: res.Err}
	}

	dog := res.Dog
	s.state.Matched = &dog
	s.bus.Publish(MatchedEvent{Dog: dog})
	return true, nil
}

// Matched returns the matched dog, or nil
func (s *Service) Matched() *domain.Dog {
	return s.state.Matched
}

// Loading reports whether a match is outstanding
func (s *Service) Loading() bool {
	return s.pending
}

// Reset forgets the match and invalidates in-flight requests
func (s *Service) Reset() {
	s.state = &State{}
	s.seq++
	s.pending = false
}

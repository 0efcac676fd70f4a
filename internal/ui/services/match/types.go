package match

import "pupfinder/internal/domain"

// State holds the last successful match
type State struct {
	Matched *domain.Dog
}

// Request is one issued match, tagged like search requests
type Request struct {
	Seq       uint64
	Favorites []string
}

// Result is what Fetch produced for a Request
type Result struct {
	Request Request
	Dog     domain.Dog
	Err     error
}

// Event types
type MatchIssuedEvent struct {
	Seq       uint64
	Favorites int
}

type MatchedEvent struct {
	Dog domain.Dog
}

type MatchFailedEvent struct {
	Err error
}

package session

import "pupfinder/internal/domain"

// State is the session gate. There are exactly two states.
type State struct {
	Current domain.SessionState
	Name    string
}

// LoginResult is the outcome of a login call
type LoginResult struct {
	Creds domain.Credentials
	Err   error
}

// LogoutResult is the outcome of a logout call
type LogoutResult struct {
	Err error
}

// Event types
type SessionChangedEvent struct {
	From domain.SessionState
	To   domain.SessionState
	Name string
}

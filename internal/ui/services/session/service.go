package session

import (
	"context"

	"pupfinder/internal/api"
	"pupfinder/internal/domain"
	"pupfinder/internal/logging"
	"pupfinder/internal/logic"
	"pupfinder/internal/ui/services/events"
)

// Service is the LoggedOut/LoggedIn state machine. Hooks registered with
// OnEnter run on every transition into LoggedIn, OnExit hooks on every
// transition back to LoggedOut.
type Service struct {
	state   *State
	bus     events.EventBus
	onEnter []func(name string)
	onExit  []func()
}

// NewService creates a session gate in the LoggedOut state
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Current: domain.LoggedOut},
		bus:   bus,
	}
}

// OnEnter registers a hook for the LoggedOut -> LoggedIn transition
func (s *Service) OnEnter(fn func(name string)) {
	s.onEnter = append(s.onEnter, fn)
}

// OnExit registers a hook for the LoggedIn -> LoggedOut transition
func (s *Service) OnExit(fn func()) {
	s.onExit = append(s.onExit, fn)
}

// Authenticate posts the credentials. It does not touch service state.
func Authenticate(ctx context.Context, auth logic.Authenticator, creds domain.Credentials) LoginResult {
	return LoginResult{Creds: creds, Err: auth.Login(ctx, creds)}
}

// EndSession calls the remote logout. It does not touch service state.
func EndSession(ctx context.Context, auth logic.Authenticator) LogoutResult {
	return LogoutResult{Err: auth.Logout(ctx)}
}

// ApplyLogin moves to LoggedIn on success. A rejected login and an
// unreachable server produce different inline notices.
func (s *Service) ApplyLogin(res LoginResult) *domain.Notice {
	if res.Err != nil {
		if api.IsTransport(res.Err) {
			logging.Warn("login failed", "err", res.Err)
			return &domain.Notice{Level: domain.NoticeInline, Text: domain.NoticeLoginUnavailable, Err: res.Err}
		}
		logging.Info("login rejected", "err", res.Err)
		return &domain.Notice{Level: domain.NoticeInline, Text: domain.NoticeInvalidCredentials, Err: res.Err}
	}

	if s.state.Current == domain.LoggedIn {
		return nil
	}
	s.transition(domain.LoggedIn, res.Creds.Name)
	for _, fn := range s.onEnter {
		fn(res.Creds.Name)
	}
	return nil
}

// ApplyLogout always ends the local session. When the server could not be
// reached a blocking notice says so.
func (s *Service) ApplyLogout(res LogoutResult) *domain.Notice {
	var notice *domain.Notice
	if res.Err != nil {
		logging.Warn("logout call failed", "err", res.Err)
		if api.IsTransport(res.Err) {
			notice = &domain.Notice{Level: domain.NoticeBlocking, Text: domain.NoticeLogoutFailed, Err: res.Err}
		}
	}

	if s.state.Current == domain.LoggedOut {
		return notice
	}
	s.transition(domain.LoggedOut, "")
	for _, fn := range s.onExit {
		fn()
	}
	return notice
}

func (s *Service) transition(to domain.SessionState, name string) {
	from := s.state.Current
	s.state.Current = to
	s.state.Name = name

	logging.Info("session changed", "from", from, "to", to)
	s.bus.Publish(SessionChangedEvent{From: from, To: to, Name: name})
}

// Current returns the session state
func (s *Service) Current() domain.SessionState {
	return s.state.Current
}

// LoggedIn is shorthand for Current() == domain.LoggedIn
func (s *Service) LoggedIn() bool {
	return s.state.Current == domain.LoggedIn
}

// Name returns the name used to log in
func (s *Service) Name() string {
	return s.state.Name
}

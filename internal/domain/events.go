package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSessionChanged  EventType = "SessionChanged"
	EventSearchCompleted EventType = "SearchCompleted"
	EventMatchFound      EventType = "MatchFound"
	EventBreedsLoaded    EventType = "BreedsLoaded"
	EventError           EventType = "Error"
	EventConfigChanged   EventType = "ConfigChanged"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SessionChangedEvent is emitted on every session gate transition
type SessionChangedEvent struct {
	From SessionState
	To   SessionState
	Name string // login name, empty on logout
}

func (e SessionChangedEvent) Type() EventType { return EventSessionChanged }

// SearchCompletedEvent is emitted when a search page has been applied
type SearchCompletedEvent struct {
	Page       int
	TotalPages int
	Total      int
	Count      int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// MatchFoundEvent is emitted when a match has been resolved to a dog
type MatchFoundEvent struct {
	Dog Dog
}

func (e MatchFoundEvent) Type() EventType { return EventMatchFound }

// BreedsLoadedEvent is emitted when the breed list has been fetched
type BreedsLoadedEvent struct {
	Count int
}

func (e BreedsLoadedEvent) Type() EventType { return EventBreedsLoaded }

// ErrorEvent is emitted when an operation fails
type ErrorEvent struct {
	Op      string
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	LoginName  string
	LoginEmail string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

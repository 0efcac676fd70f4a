package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeLogin Mode = iota
	ModeNormal
	ModeFilter
	ModeBreedSelect
	ModeNotice
)

func (m Mode) String() string {
	switch m {
	case ModeLogin:
		return "login"
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeBreedSelect:
		return "breed"
	case ModeNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentDogID() string
	HasMatch() bool
	Breeds() []string
	CurrentBreed() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

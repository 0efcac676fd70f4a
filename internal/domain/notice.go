package domain

// NoticeLevel decides how loudly a failure or precondition is reported
type NoticeLevel int

const (
	// NoticeSilent is written to the log only
	NoticeSilent NoticeLevel = iota
	// NoticeInline is shown next to the form that caused it
	NoticeInline
	// NoticeBlocking is shown in a popup that must be dismissed
	NoticeBlocking
)

func (l NoticeLevel) String() string {
	switch l {
	case NoticeInline:
		return "inline"
	case NoticeBlocking:
		return "blocking"
	default:
		return "silent"
	}
}

// Notice is a user-facing message produced by an operation
type Notice struct {
	Level NoticeLevel
	Text  string
	Err   error // underlying cause, logged but never shown verbatim
}

// Notice texts shared between services and tests
const (
	NoticeInvalidCredentials = "Invalid credentials. Please try again."
	NoticeLoginUnavailable   = "An error occurred. Please try again later."
	NoticeNoFavorites        = "Please add at least one dog to your favorites before generating a match."
	NoticeMatchFailed        = "An error occurred while generating the match. Please try again later."
	NoticeLogoutFailed       = "Could not reach the server to log out. You have been logged out locally."
)

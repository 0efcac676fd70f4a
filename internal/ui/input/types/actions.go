package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Paging actions
type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PrevPageAction struct{}

func (a PrevPageAction) Type() string { return "prev_page" }

type ToggleSortAction struct{}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

// SearchAction reruns the search for the current filter from page 1
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Favorites and match
type ToggleFavoriteAction struct {
	ID string
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type GenerateMatchAction struct{}

func (a GenerateMatchAction) Type() string { return "generate_match" }

// ShowDetailsAction opens a dog in the pager
type ShowDetailsAction struct {
	ID      string
	Matched bool // show the matched dog instead of ID
}

func (a ShowDetailsAction) Type() string { return "show_details" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Form actions
type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitFormAction struct {
	Mode   Mode
	Values []string
}

func (a SubmitFormAction) Type() string { return "submit_form" }

type CancelFormAction struct{}

func (a CancelFormAction) Type() string { return "cancel_form" }

// Breed picker actions
type SelectBreedAction struct {
	Breed string // empty for any breed
}

func (a SelectBreedAction) Type() string { return "select_breed" }

type UpdateBreedIndexAction struct {
	Index int
}

func (a UpdateBreedIndexAction) Type() string { return "update_breed_index" }

// Session and app actions
type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap describes the search view keys for the help bar
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Sort     key.Binding
	Favorite key.Binding
	Filter   key.Binding
	Breed    key.Binding
	Search   key.Binding
	Clear    key.Binding
	Match    key.Binding
	ShowDog  key.Binding
	Logout   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the bindings handled by the normal input mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPage: key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "prev page")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Favorite: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "favorite")),
		Filter:   key.NewBinding(key.WithKeys("f", "/"), key.WithHelp("f", "filter")),
		Breed:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breed")),
		Search:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "search")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter")),
		Match:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "match")),
		ShowDog:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Logout:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Breed, k.Sort, k.NextPage, k.PrevPage, k.Favorite, k.Match, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Search, k.Filter, k.Breed, k.Clear, k.Sort},
		{k.Favorite, k.Match, k.ShowDog},
		{k.Logout, k.Help, k.Quit},
	}
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pupfinder/internal/domain"
	"pupfinder/internal/ui/input/modes"
	"pupfinder/internal/ui/input/types"
)

// FavoriteEntry is one favorite as shown in the side list
type FavoriteEntry struct {
	ID    string
	Label string // dog name, or the ID when the record was never seen
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Mode   types.Mode

	// Login view
	LoginForm    *modes.Form
	InlineNotice string
	LoggingIn    bool

	// Search view
	UserName      string
	Filter        domain.Filter
	FilterForm    *modes.Form
	SortLabel     string
	Dogs          []domain.Dog
	FavoriteSet   map[string]bool
	Favorites     []FavoriteEntry
	Matched       *domain.Dog
	Cursor        int
	VisibleStart  int
	VisibleEnd    int
	CurrentPage   int
	TotalPages    int
	Total         int
	HasPrev       bool
	HasNext       bool
	Searched      bool
	Loading       bool
	MatchLoading  bool
	Spinner       string
	StatusMessage string
	Breeds        []string
	BreedIndex    int

	// Overlays
	Notice    *domain.Notice
	HelpModel help.Model
	Keys      KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	dogRender   *DogRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showImages bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		dogRender:   NewDogRenderer(styles, showImages),
		popupRender: NewPopupRenderer(styles),
	}
}

// Dogs returns the card renderer, used for the details pager
func (r *Renderer) Dogs() *DogRenderer {
	return r.dogRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	var main string
	if state.Mode == types.ModeLogin || (state.Mode == types.ModeNotice && state.UserName == "") {
		main = r.renderLogin(state, width, height)
	} else {
		main = r.styles.Main.Render(r.renderSearch(state, width-4))
	}

	switch state.Mode {
	case types.ModeBreedSelect:
		return r.popupRender.RenderPopupOverlay(main, r.renderBreedPicker(state, height), height, width, r.styles.PickerBox)
	case types.ModeNotice:
		if state.Notice != nil {
			return r.popupRender.RenderPopupOverlay(main, r.renderNotice(state.Notice), height, width, r.styles.NoticeBox)
		}
	}
	return main
}

func (r *Renderer) renderLogin(state ViewState, width, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("pupfinder"))
	b.WriteString("\n")
	b.WriteString("Log in to find a dog to adopt.\n\n")

	if state.LoginForm != nil {
		b.WriteString(r.renderForm(state.LoginForm, state.Mode == types.ModeLogin))
	}

	b.WriteString("\n")
	switch {
	case state.LoggingIn:
		b.WriteString(r.styles.Dim.Render(state.Spinner + " Logging in..."))
	case state.InlineNotice != "":
		b.WriteString(r.styles.StatusError.Render(state.InlineNotice))
	default:
		b.WriteString(r.styles.Help.Render("tab next field • enter log in • ctrl+c quit"))
	}

	box := r.styles.LoginBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderForm renders labelled fields, highlighting the focused one
func (r *Renderer) renderForm(form *modes.Form, active bool) string {
	var b strings.Builder
	for i, field := range form.Fields {
		label := r.styles.Label.Render(form.Labels[i])
		if active && i == form.Focused() {
			label = r.styles.Focused.Render(form.Labels[i])
		}
		b.WriteString(fmt.Sprintf("%s %s\n", label, field.View()))
	}
	return b.String()
}

func (r *Renderer) renderSearch(state ViewState, width int) string {
	content := &strings.Builder{}

	// Title with the signed-in user on the right
	logo := r.styles.Title.Render("pupfinder")
	right := r.styles.Dim.Render("signed in as " + state.UserName)
	if state.Loading {
		right = r.styles.Dim.Render(state.Spinner+" Searching") + "  " + right
	}
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	content.WriteString(logo + strings.Repeat(" ", padding) + right)
	content.WriteString("\n")

	// Filter bar, or the filter form while editing
	if state.Mode == types.ModeFilter && state.FilterForm != nil {
		content.WriteString(r.renderForm(state.FilterForm, true))
		content.WriteString(r.styles.Help.Render("tab next field • enter search • esc cancel"))
		content.WriteString("\n")
	} else {
		content.WriteString(r.renderFilterBar(state))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	// Results
	content.WriteString(r.renderResults(state, width))

	// Pagination
	content.WriteString("\n")
	content.WriteString(r.renderPagination(state))
	content.WriteString("\n")

	// Favorites and match
	content.WriteString(r.renderFavorites(state, width))
	if state.MatchLoading {
		content.WriteString("\n" + r.styles.Dim.Render(state.Spinner+" Finding your match..."))
	}
	if state.Matched != nil {
		content.WriteString("\n")
		content.WriteString(r.dogRender.RenderMatch(*state.Matched))
	}

	// Status and help
	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}
	content.WriteString("\n\n")
	state.HelpModel.Width = width
	content.WriteString(state.HelpModel.View(state.Keys))

	return content.String()
}

func (r *Renderer) renderFilterBar(state ViewState) string {
	var parts []string
	breed := "any breed"
	if state.Filter.Breed != "" {
		breed = state.Filter.Breed
	}
	parts = append(parts, "breed: "+breed)
	if state.Filter.AgeMin != "" || state.Filter.AgeMax != "" {
		parts = append(parts, fmt.Sprintf("age: %s-%s", orAny(state.Filter.AgeMin), orAny(state.Filter.AgeMax)))
	}
	if state.Filter.ZipCodes != "" {
		parts = append(parts, "zip: "+state.Filter.ZipCodes)
	}
	parts = append(parts, "sort: "+state.SortLabel)
	return r.styles.Filter.Render("[" + strings.Join(parts, " | ") + "]")
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

func (r *Renderer) renderResults(state ViewState, width int) string {
	if len(state.Dogs) == 0 {
		if state.Searched {
			return r.styles.Dim.Render("No dogs match this search.") + "\n"
		}
		return r.styles.Dim.Render("Press r to search, f to filter, b to pick a breed.") + "\n"
	}

	var b strings.Builder
	if state.VisibleStart > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.VisibleStart)))
		b.WriteString("\n")
	}
	for i := state.VisibleStart; i < state.VisibleEnd && i < len(state.Dogs); i++ {
		dog := state.Dogs[i]
		b.WriteString(r.dogRender.RenderCard(dog, i == state.Cursor, state.FavoriteSet[dog.ID], width))
		b.WriteString("\n")
	}
	if rest := len(state.Dogs) - state.VisibleEnd; rest > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPageLabel returns the "Page X of Y" label
func RenderPageLabel(current, total int) string {
	return fmt.Sprintf("Page %d of %d", current, total)
}

func (r *Renderer) renderPagination(state ViewState) string {
	prev := r.styles.Dim.Render("‹ prev")
	if state.HasPrev {
		prev = "‹ prev"
	}
	next := r.styles.Dim.Render("next ›")
	if state.HasNext {
		next = "next ›"
	}
	label := RenderPageLabel(state.CurrentPage, state.TotalPages)
	if state.Searched {
		label += r.styles.Dim.Render(fmt.Sprintf(" (%d dogs)", state.Total))
	}
	return fmt.Sprintf("%s  %s  %s", prev, label, next)
}

func (r *Renderer) renderFavorites(state ViewState, width int) string {
	header := r.styles.Favorite.Render(fmt.Sprintf("♥ Favorites (%d)", len(state.Favorites)))
	if len(state.Favorites) == 0 {
		return header + r.styles.Dim.Render("  none yet, press space on a dog")
	}
	names := make([]string, 0, len(state.Favorites))
	for _, f := range state.Favorites {
		names = append(names, f.Label)
	}
	return header + "  " + truncate(strings.Join(names, ", "), width-lipgloss.Width(header)-2)
}

func (r *Renderer) renderBreedPicker(state ViewState, height int) string {
	options := append([]string{modes.AnyBreed}, state.Breeds...)

	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	start := state.BreedIndex - visible/2
	if start > len(options)-visible {
		start = len(options) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(options) {
		end = len(options)
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Pick a breed"))
	b.WriteString("\n")
	for i := start; i < end; i++ {
		if i == state.BreedIndex {
			b.WriteString(r.styles.Highlight.Render("> " + options[i]))
		} else {
			b.WriteString("  " + options[i])
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(state.Breeds) == 0 {
		b.WriteString("\n" + r.styles.Dim.Render("breed list not loaded"))
	}
	return b.String()
}

func (r *Renderer) renderNotice(n *domain.Notice) string {
	return n.Text + "\n\n" + r.styles.Help.Render("enter to dismiss")
}

package modes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/ui/input/types"
)

// AnyBreed is the label of the first picker option, which clears the breed
const AnyBreed = "any breed"

// breedPageStep is how far pgup/pgdown move in the picker
const breedPageStep = 10

// BreedSelectMode picks one breed from the list fetched at login.
// Index 0 is AnyBreed, index i > 0 is ctx.Breeds()[i-1].
type BreedSelectMode struct {
	index int
}

func NewBreedSelectMode() *BreedSelectMode {
	return &BreedSelectMode{}
}

func (m *BreedSelectMode) Name() string {
	return "breed"
}

func (m *BreedSelectMode) Enter(ctx types.Context) []types.Action {
	// Start on the breed currently in the filter
	m.index = 0
	current := ctx.CurrentBreed()
	for i, breed := range ctx.Breeds() {
		if breed == current {
			m.index = i + 1
			break
		}
	}
	return []types.Action{types.UpdateBreedIndexAction{Index: m.index}}
}

func (m *BreedSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for breed selection
func (m *BreedSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	count := len(ctx.Breeds()) + 1

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		breed := ""
		if m.index > 0 && m.index <= len(ctx.Breeds()) {
			breed = ctx.Breeds()[m.index-1]
		}
		return []types.Action{
			types.SelectBreedAction{Breed: breed},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "ctrl+p":
		return m.move(-1, count), true
	case "down", "ctrl+n":
		return m.move(1, count), true
	case "pgup":
		return m.moveTo(m.index-breedPageStep, count), true
	case "pgdown":
		return m.moveTo(m.index+breedPageStep, count), true
	case "home":
		return m.moveTo(0, count), true
	case "end":
		return m.moveTo(count-1, count), true
	}

	// A letter jumps to the next breed starting with it
	if runes := msg.Runes; msg.Type == tea.KeyRunes && len(runes) == 1 {
		if idx, ok := nextWithPrefix(ctx.Breeds(), m.index, string(runes)); ok {
			return m.moveTo(idx, count), true
		}
		return nil, true
	}

	return nil, false
}

func (m *BreedSelectMode) move(delta, count int) []types.Action {
	// Wraps around like the sort picker
	m.index = (m.index + delta + count) % count
	return []types.Action{types.UpdateBreedIndexAction{Index: m.index}}
}

func (m *BreedSelectMode) moveTo(index, count int) []types.Action {
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}
	m.index = index
	return []types.Action{types.UpdateBreedIndexAction{Index: m.index}}
}

// nextWithPrefix finds the first picker index after current whose breed
// starts with prefix, wrapping around.
func nextWithPrefix(breeds []string, current int, prefix string) (int, bool) {
	prefix = strings.ToLower(prefix)
	n := len(breeds)
	for step := 1; step <= n; step++ {
		i := (current - 1 + step) % n
		if i < 0 {
			i += n
		}
		if strings.HasPrefix(strings.ToLower(breeds[i]), prefix) {
			return i + 1, true
		}
	}
	return 0, false
}

// GetCurrentIndex returns the highlighted picker index
func (m *BreedSelectMode) GetCurrentIndex() int {
	return m.index
}

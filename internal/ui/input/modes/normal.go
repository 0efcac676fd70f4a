package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.PrevPageAction{}}, true

	case tea.KeyRight:
		return []types.Action{types.NextPageAction{}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentDogID(); id != "" {
			return []types.Action{types.ShowDetailsAction{ID: id}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "n", "l":
		return []types.Action{types.NextPageAction{}}, true

	case "p", "h":
		return []types.Action{types.PrevPageAction{}}, true

	case "s":
		return []types.Action{types.ToggleSortAction{}}, true

	case " ":
		// Space toggles the favorite on the focused card
		if id := ctx.CurrentDogID(); id != "" {
			return []types.Action{types.ToggleFavoriteAction{ID: id}}, true
		}
		return nil, true

	case "/", "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "b":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBreedSelect}}, true

	case "r":
		return []types.Action{types.SearchAction{}}, true

	case "x":
		return []types.Action{types.ClearFilterAction{}}, true

	case "m":
		return []types.Action{types.GenerateMatchAction{}}, true

	case "M":
		if ctx.HasMatch() {
			return []types.Action{types.ShowDetailsAction{Matched: true}}, true
		}
		return nil, true

	case "L":
		return []types.Action{types.LogoutAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

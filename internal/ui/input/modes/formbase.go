package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/ui/input/types"
)

// FormMode is a base for modes that edit a Form
type FormMode struct {
	mode          types.Mode
	name          string
	form          *Form
	cancelable    bool // esc returns to normal mode
	submitFromAny bool // enter submits from any field, not just the last
}

func (m FormMode) Name() string {
	return m.name
}

// Form returns the form edited by this mode
func (m FormMode) Form() *Form {
	return m.form
}

func (m FormMode) Enter(ctx types.Context) []types.Action {
	if m.form != nil {
		m.form.FocusFirst()
	}
	return nil
}

func (m FormMode) Exit(ctx types.Context) []types.Action {
	if m.form != nil {
		m.form.Blur()
	}
	return nil
}

func (m FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		if !m.cancelable {
			return nil, true
		}
		return []types.Action{
			types.CancelFormAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		if !m.submitFromAny && m.form != nil && !m.form.IsLast() {
			return []types.Action{types.FocusFieldAction{Delta: 1}}, true
		}
		var values []string
		if m.form != nil {
			values = m.form.Values()
		}
		return []types.Action{types.SubmitFormAction{Mode: m.mode, Values: values}}, true
	default:
		// Let the main handler update the focused field
		return nil, false
	}
}

package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/ui/input/modes"
	"pupfinder/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	forms       map[types.Mode]*modes.Form
	breedSelect *modes.BreedSelectMode
	underlying  types.Mode // mode beneath an open popup
}

func New() *Handler {
	loginForm := modes.NewLoginForm()
	filterForm := modes.NewFilterForm()

	h := &Handler{
		currentMode: types.ModeLogin,
		modes:       make(map[types.Mode]types.ModeHandler),
		forms: map[types.Mode]*modes.Form{
			types.ModeLogin:  loginForm,
			types.ModeFilter: filterForm,
		},
		breedSelect: modes.NewBreedSelectMode(),
	}

	// Register all mode handlers
	h.modes[types.ModeLogin] = modes.NewLoginMode(loginForm)
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeFilter] = modes.NewFilterMode(filterForm)
	h.modes[types.ModeBreedSelect] = h.breedSelect
	h.modes[types.ModeNotice] = modes.NewNoticeMode()

	loginForm.FocusFirst()
	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Unconsumed keys only matter to form modes
	form := h.forms[h.currentMode]
	if !consumed && form == nil {
		return nil, nil
	}

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.switchMode(a.Mode, ctx)...)
		case types.FocusFieldAction:
			if form != nil {
				cmds = append(cmds, form.Focus(a.Delta))
			}
		default:
			allActions = append(allActions, action)
		}
	}

	// Keys the form mode did not claim are typed into the focused field
	if !consumed && form != nil {
		cmds = append(cmds, form.Update(msg))
	}

	return allActions, tea.Batch(cmds...)
}

// switchMode runs the exit and enter hooks and returns their actions
func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches mode from outside key handling, e.g. after a login
// succeeds or a notice has to be shown.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

// PushMode opens a popup mode over the current one. The current mode is
// not exited, so a half-filled form or picker survives the popup.
func (h *Handler) PushMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	h.underlying = h.currentMode
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		return next.Enter(ctx)
	}
	return nil
}

// PopMode closes the popup and returns to the mode beneath it
func (h *Handler) PopMode(ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = current.Exit(ctx)
	}
	h.currentMode = h.underlying
	return actions
}

// UnderlyingMode returns the mode a popup returns to
func (h *Handler) UnderlyingMode() types.Mode {
	return h.underlying
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeLogin
	}
	return h.currentMode
}

// Form returns the form of a form mode, or nil
func (h *Handler) Form(mode types.Mode) *modes.Form {
	return h.forms[mode]
}

// BreedIndex returns the highlighted breed picker index
func (h *Handler) BreedIndex() int {
	return h.breedSelect.GetCurrentIndex()
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Update handles non-keyboard messages for the active form, e.g. cursor blink
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if form := h.forms[h.currentMode]; form != nil {
		return form.Update(msg)
	}
	return nil
}

// Reset returns to the login form. Login fields keep their text so the
// last name and email stay prefilled; the filter form is cleared.
func (h *Handler) Reset() {
	h.currentMode = types.ModeLogin
	h.underlying = types.ModeLogin
	h.forms[types.ModeFilter].Reset()
	h.forms[types.ModeFilter].Blur()
	h.forms[types.ModeLogin].FocusFirst()
}

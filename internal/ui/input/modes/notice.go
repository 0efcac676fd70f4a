package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/ui/input/types"
)

// NoticeMode shows a blocking notice until it is dismissed
type NoticeMode struct{}

func NewNoticeMode() *NoticeMode {
	return &NoticeMode{}
}

func (m *NoticeMode) Name() string {
	return "notice"
}

func (m *NoticeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", " ", "q":
		return []types.Action{types.DismissNoticeAction{}}, true
	}
	// Swallow everything else while the popup is up
	return nil, true
}

package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form is a column of text inputs with one focused field
type Form struct {
	Labels []string
	Fields []textinput.Model
	focus  int
}

// NewForm creates a form with one field per label
func NewForm(labels []string, placeholders []string) *Form {
	f := &Form{Labels: labels}
	for i := range labels {
		ti := textinput.New()
		ti.Prompt = "" // Label is rendered by the view
		ti.CharLimit = 256
		if i < len(placeholders) {
			ti.Placeholder = placeholders[i]
		}
		f.Fields = append(f.Fields, ti)
	}
	return f
}

// Focused returns the index of the focused field
func (f *Form) Focused() int {
	return f.focus
}

// IsLast reports whether the last field has focus
func (f *Form) IsLast() bool {
	return f.focus == len(f.Fields)-1
}

// Focus moves focus by delta, wrapping around
func (f *Form) Focus(delta int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	f.focus = (f.focus + delta + len(f.Fields)) % len(f.Fields)
	return f.focusCurrent()
}

// FocusFirst focuses the first field
func (f *Form) FocusFirst() tea.Cmd {
	f.focus = 0
	return f.focusCurrent()
}

func (f *Form) focusCurrent() tea.Cmd {
	for i := range f.Fields {
		if i == f.focus {
			f.Fields[i].Focus()
		} else {
			f.Fields[i].Blur()
		}
	}
	return textinput.Blink
}

// Blur removes focus from every field
func (f *Form) Blur() {
	for i := range f.Fields {
		f.Fields[i].Blur()
	}
}

// Values returns the text of every field
func (f *Form) Values() []string {
	values := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		values[i] = field.Value()
	}
	return values
}

// SetValues fills fields in order; missing values leave fields untouched
func (f *Form) SetValues(values ...string) {
	for i := range f.Fields {
		if i < len(values) {
			f.Fields[i].SetValue(values[i])
		}
	}
}

// Reset clears every field
func (f *Form) Reset() {
	for i := range f.Fields {
		f.Fields[i].Reset()
	}
	f.focus = 0
}

// Update forwards a message to the focused field
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.focus], cmd = f.Fields[f.focus].Update(msg)
	return cmd
}

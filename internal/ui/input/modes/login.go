package modes

import "pupfinder/internal/ui/input/types"

// Login form field order
const (
	LoginFieldName = iota
	LoginFieldEmail
)

type LoginMode struct {
	FormMode
}

func NewLoginMode(form *Form) *LoginMode {
	return &LoginMode{
		FormMode: FormMode{mode: types.ModeLogin, name: "login", form: form},
	}
}

// NewLoginForm creates the name and email form
func NewLoginForm() *Form {
	return NewForm(
		[]string{"Name", "Email"},
		[]string{"Your name", "you@example.com"},
	)
}

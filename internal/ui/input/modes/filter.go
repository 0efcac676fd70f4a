package modes

import "pupfinder/internal/ui/input/types"

// Filter form field order. Breed is picked from a list, not typed.
const (
	FilterFieldAgeMin = iota
	FilterFieldAgeMax
	FilterFieldZipCodes
)

type FilterMode struct {
	FormMode
}

func NewFilterMode(form *Form) *FilterMode {
	return &FilterMode{
		FormMode: FormMode{
			mode:          types.ModeFilter,
			name:          "filter",
			form:          form,
			cancelable:    true,
			submitFromAny: true,
		},
	}
}

// NewFilterForm creates the age and zip code form
func NewFilterForm() *Form {
	return NewForm(
		[]string{"Min age", "Max age", "Zip codes"},
		[]string{"any", "any", "comma separated, e.g. 10001, 10002"},
	)
}

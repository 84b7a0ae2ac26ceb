package money

import "phonedash/internal/forms"

// NewInput returns the state of a money input field. The initial value is kept
// verbatim for Reset; every HandleChange stores Normalize(raw).
func NewInput(initial string) *forms.Field {
	return forms.NewField(initial, Normalize)
}

// Package forms holds the input transitions used by the dashboard forms. Each
// transition is a pure function from what the user typed to what is displayed.
package forms

// Transition maps raw input to its display value.
type Transition func(string) string

// Field is the state of one controlled input. It is owned by a single form and is
// not safe for concurrent use.
type Field struct {
	initial    string
	value      string
	transition Transition
}

// NewField captures initial for Reset. A nil transition stores input unchanged.
func NewField(initial string, t Transition) *Field {
	if t == nil {
		t = func(s string) string { return s }
	}
	return &Field{initial: initial, value: initial, transition: t}
}

func (f *Field) Value() string { return f.value }

// HandleChange applies the transition to raw, stores and returns the result.
func (f *Field) HandleChange(raw string) string {
	f.value = f.transition(raw)
	return f.value
}

// Set stores v as is, bypassing the transition.
func (f *Field) Set(v string) { f.value = v }

// Reset restores the value the field was created with.
func (f *Field) Reset() { f.value = f.initial }

// Package form holds the editing core shared by the dashboard forms: derived
// fields, nested record arrays, dependent selects and the mapping of form
// values to API payloads. Everything here is synchronous and free of I/O; each
// operation takes the current snapshot and returns the next one.
package form

// Field is a single editable value. Touched turns true on the first manual
// edit and never goes back for the life of the form instance.
type Field[T any] struct {
	Value   T
	Touched bool
	Error   string
}

// NewField returns an untouched field, as used by create forms.
func NewField[T any](value T) Field[T] {
	return Field[T]{Value: value}
}

// LoadedField returns a field seeded from an existing record. Loaded values
// count as user-owned, so derivation never overwrites them.
func LoadedField[T any](value T) Field[T] {
	return Field[T]{Value: value, Touched: true}
}

// Edit records a manual user edit.
func (f Field[T]) Edit(value T) Field[T] {
	f.Value = value
	f.Touched = true
	f.Error = ""
	return f
}

// Derive applies a computed value only while the field is untouched.
func (f Field[T]) Derive(value T) Field[T] {
	if f.Touched {
		return f
	}
	f.Value = value
	f.Error = ""
	return f
}

// WithError attaches a validation message.
func (f Field[T]) WithError(msg string) Field[T] {
	f.Error = msg
	return f
}

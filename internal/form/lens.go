package form

// Lens points at one field of a record. It replaces string-keyed updates
// with a typed accessor, so a value of the wrong type does not compile.
type Lens[T, V any] func(*T) *V

// Set returns a copy of rec with the field selected by lens replaced.
func Set[T, V any](rec T, lens Lens[T, V], value V) T {
	*lens(&rec) = value
	return rec
}

// Get reads the field selected by lens.
func Get[T, V any](rec T, lens Lens[T, V]) V {
	return *lens(&rec)
}

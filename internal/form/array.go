package form

import (
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrNoDefaultRecord is returned by Append when the array was built
	// without a default record factory.
	ErrNoDefaultRecord = errors.New("form: nested array has no default record factory")
	// ErrIndexOutOfRange is returned for remove/update outside the array.
	ErrIndexOutOfRange = errors.New("form: index out of range")
)

// Item is one record of a NestedArray with its render key. Keys are
// assigned once and survive removal of other items.
type Item[T any] struct {
	Key   string
	Value T
}

// NestedArray is an ordered list of sub-records embedded in a parent form.
// Every operation returns a new array; the receiver and its backing slice
// are left untouched.
type NestedArray[T any] struct {
	items         []Item[T]
	defaultRecord func() T
}

// NewNestedArray builds an array seeded with existing records.
func NewNestedArray[T any](defaultRecord func() T, seed ...T) NestedArray[T] {
	items := make([]Item[T], 0, len(seed))
	for _, v := range seed {
		items = append(items, Item[T]{Key: newKey(), Value: v})
	}
	return NestedArray[T]{items: items, defaultRecord: defaultRecord}
}

func newKey() string {
	return ulid.Make().String()
}

// Len returns the number of records.
func (a NestedArray[T]) Len() int {
	return len(a.items)
}

// At returns the record at index.
func (a NestedArray[T]) At(index int) (Item[T], bool) {
	if index < 0 || index >= len(a.items) {
		return Item[T]{}, false
	}
	return a.items[index], true
}

// Items returns a copy of the keyed records in order.
func (a NestedArray[T]) Items() []Item[T] {
	return append([]Item[T](nil), a.items...)
}

// Values returns the records in order.
func (a NestedArray[T]) Values() []T {
	out := make([]T, 0, len(a.items))
	for _, it := range a.items {
		out = append(out, it.Value)
	}
	return out
}

// Keys returns the render keys in order.
func (a NestedArray[T]) Keys() []string {
	out := make([]string, 0, len(a.items))
	for _, it := range a.items {
		out = append(out, it.Key)
	}
	return out
}

// Append pushes a fresh default record to the end.
func (a NestedArray[T]) Append() (NestedArray[T], error) {
	if a.defaultRecord == nil {
		return a, ErrNoDefaultRecord
	}
	return a.AppendValue(a.defaultRecord()), nil
}

// AppendValue pushes v to the end.
func (a NestedArray[T]) AppendValue(v T) NestedArray[T] {
	items := make([]Item[T], len(a.items), len(a.items)+1)
	copy(items, a.items)
	a.items = append(items, Item[T]{Key: newKey(), Value: v})
	return a
}

// Remove deletes the record at index. Later records shift down by one and
// keep their keys.
func (a NestedArray[T]) Remove(index int) (NestedArray[T], error) {
	if index < 0 || index >= len(a.items) {
		return a, fmt.Errorf("remove %d of %d: %w", index, len(a.items), ErrIndexOutOfRange)
	}
	items := make([]Item[T], 0, len(a.items)-1)
	items = append(items, a.items[:index]...)
	items = append(items, a.items[index+1:]...)
	a.items = items
	return a, nil
}

// Update replaces the record at index with fn(record). Sibling records are
// copied unchanged.
func (a NestedArray[T]) Update(index int, fn func(T) T) (NestedArray[T], error) {
	if index < 0 || index >= len(a.items) {
		return a, fmt.Errorf("update %d of %d: %w", index, len(a.items), ErrIndexOutOfRange)
	}
	items := make([]Item[T], len(a.items))
	copy(items, a.items)
	items[index].Value = fn(items[index].Value)
	a.items = items
	return a, nil
}

// UpdateAt sets a single field of the record at index.
func UpdateAt[T, V any](a NestedArray[T], index int, lens Lens[T, V], value V) (NestedArray[T], error) {
	return a.Update(index, func(rec T) T {
		return Set(rec, lens, value)
	})
}

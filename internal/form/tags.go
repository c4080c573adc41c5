package form

import "strings"

// TagSet is an insertion-ordered set of free-form strings (tags, allergens,
// ingredients, cuisines, features). Matching is exact and case-sensitive.
type TagSet struct {
	values []string
}

// NewTagSet builds a set from values, trimming them and dropping empties and
// repeats.
func NewTagSet(values ...string) TagSet {
	var s TagSet
	for _, v := range values {
		s, _ = s.Add(v)
	}
	return s
}

// Add inserts the trimmed value. It reports false, leaving the set as is,
// when the value is empty or already present.
func (s TagSet) Add(raw string) (TagSet, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || s.Contains(v) {
		return s, false
	}
	values := make([]string, len(s.values), len(s.values)+1)
	copy(values, s.values)
	s.values = append(values, v)
	return s, true
}

// Remove deletes value if present.
func (s TagSet) Remove(value string) TagSet {
	out := make([]string, 0, len(s.values))
	for _, v := range s.values {
		if v != value {
			out = append(out, v)
		}
	}
	s.values = out
	return s
}

// Contains reports exact membership.
func (s TagSet) Contains(value string) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns the members in insertion order. Never nil.
func (s TagSet) Values() []string {
	return append([]string{}, s.values...)
}

// Len returns the number of members.
func (s TagSet) Len() int {
	return len(s.values)
}

// StagedInput is the text box next to a chip list. Commit corresponds to
// pressing Enter or clicking "Add".
type StagedInput struct {
	Value string
}

// Commit adds the staged value to set. The input is cleared only when the
// value was accepted.
func (in StagedInput) Commit(set TagSet) (StagedInput, TagSet, bool) {
	next, ok := set.Add(in.Value)
	if !ok {
		return in, set, false
	}
	return StagedInput{}, next, true
}

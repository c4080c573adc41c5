package form

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field path to its message. A non-empty value
// blocks submission before any network call.
type ValidationErrors map[string]string

// Add records msg for field, keeping the first message per field.
func (v ValidationErrors) Add(field, msg string) {
	if _, ok := v[field]; ok {
		return
	}
	v[field] = msg
}

// Merge copies other into v.
func (v ValidationErrors) Merge(other ValidationErrors) {
	for field, msg := range other {
		v.Add(field, msg)
	}
}

// Err returns v as an error, or nil when it is empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

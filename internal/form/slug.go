package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SlugRule selects the character set a slug may keep.
type SlugRule int

const (
	// PersianSlug keeps Latin lowercase letters, digits and the Arabic block
	// (U+0600–U+06FF) used by Persian names. Categories and menu items use it.
	PersianSlug SlugRule = iota
	// StrictSlug keeps only a-z, 0-9 and hyphens. Business slugs end up in
	// storefront URLs and use this rule.
	StrictSlug
)

func (r SlugRule) allows(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case r == PersianSlug && c >= 0x0600 && c <= 0x06FF:
		return true
	}
	return false
}

// Slugify lowercases s, drops runes outside the rule, turns runs of
// whitespace and hyphens into a single hyphen and trims hyphens from both
// ends. An empty or fully stripped input yields "".
func Slugify(s string, rule SlugRule) string {
	s = strings.ToLower(norm.NFC.String(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, c := range s {
		switch {
		case rule.allows(c):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(c)
		case c == '-' || unicode.IsSpace(c):
			pendingHyphen = true
		}
	}
	// dropping runes can leave a composable pair behind
	return norm.NFC.String(b.String())
}

// IsValidSlug reports whether s is non-empty and already in canonical form.
func IsValidSlug(s string, rule SlugRule) bool {
	return s != "" && Slugify(s, rule) == s
}

// SlugDerivation keeps a slug in sync with a display name until the user
// edits the slug directly.
type SlugDerivation struct {
	Source Field[string]
	Target Field[string]
	Rule   SlugRule
}

// NewSlugDerivation starts a create form: both fields empty and untouched.
func NewSlugDerivation(rule SlugRule) SlugDerivation {
	return SlugDerivation{Rule: rule}
}

// LoadSlugDerivation starts an edit form. The slug is treated as touched so
// renaming an existing record never rewrites its URL.
func LoadSlugDerivation(rule SlugRule, name, slug string) SlugDerivation {
	return SlugDerivation{
		Source: LoadedField(name),
		Target: LoadedField(slug),
		Rule:   rule,
	}
}

// SetSource handles a change of the display name.
func (d SlugDerivation) SetSource(value string) SlugDerivation {
	d.Source = d.Source.Edit(value)
	d.Target = d.Target.Derive(Slugify(value, d.Rule))
	return d
}

// SetTarget handles a direct edit of the slug field.
func (d SlugDerivation) SetTarget(value string) SlugDerivation {
	d.Target = d.Target.Edit(value)
	return d
}

// Slug returns the current slug value.
func (d SlugDerivation) Slug() string {
	return d.Target.Value
}

// Name returns the current display name.
func (d SlugDerivation) Name() string {
	return d.Source.Value
}

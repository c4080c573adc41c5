package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		rule SlugRule
		want string
	}{
		{"latin words", "Pizza Place", PersianSlug, "pizza-place"},
		{"persian words", "پیش غذا", PersianSlug, "پیش-غذا"},
		{"mixed", "Café  Tehran 24", PersianSlug, "caf-tehran-24"},
		{"hyphen runs", "--a -- b--", PersianSlug, "a-b"},
		{"tabs and newlines", "a\t\nb", PersianSlug, "a-b"},
		{"punctuation dropped", "Fish & Chips!", PersianSlug, "fish-chips"},
		{"empty", "", PersianSlug, ""},
		{"only symbols", "!!! ???", PersianSlug, ""},
		{"strict keeps latin", "Pizza Place 2", StrictSlug, "pizza-place-2"},
		{"strict drops persian", "رستوران Roma", StrictSlug, "roma"},
		{"strict all persian", "رستوران", StrictSlug, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in, tc.rule))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Pizza Place", "  leading and trailing  ", "پیش غذا", "a--b", "UPPER lower", "x - y - z",
		"رستوران ایتالیایی Roma", "آش رشته", "۱۲۳ کباب", "emoji 🍕 pizza", "",
	}
	for _, rule := range []SlugRule{PersianSlug, StrictSlug} {
		for _, in := range inputs {
			once := Slugify(in, rule)
			assert.Equal(t, once, Slugify(once, rule), "input %q rule %d", in, rule)
		}
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("pizza-place", StrictSlug))
	assert.True(t, IsValidSlug("پیش-غذا", PersianSlug))
	assert.False(t, IsValidSlug("پیش-غذا", StrictSlug))
	assert.False(t, IsValidSlug("Pizza", StrictSlug))
	assert.False(t, IsValidSlug("-a", StrictSlug))
	assert.False(t, IsValidSlug("", PersianSlug))
}

func TestSlugDerivationStopsAfterManualEdit(t *testing.T) {
	d := NewSlugDerivation(PersianSlug)

	d = d.SetSource("Pizza Place")
	require.Equal(t, "pizza-place", d.Slug())
	assert.False(t, d.Target.Touched)

	d = d.SetTarget("my-pizza")
	d = d.SetSource("Pizza Palace")
	d = d.SetSource("Something else")
	assert.Equal(t, "my-pizza", d.Slug())
	assert.Equal(t, "Something else", d.Name())

	// clearing the slug by hand still counts as owning it
	d = d.SetTarget("")
	d = d.SetSource("Again")
	assert.Equal(t, "", d.Slug())
}

func TestLoadSlugDerivationKeepsStoredSlug(t *testing.T) {
	d := LoadSlugDerivation(StrictSlug, "Old Name", "old-name")
	d = d.SetSource("New Name")
	assert.Equal(t, "old-name", d.Slug())
	assert.Equal(t, "New Name", d.Name())
}

func TestFieldDeriveRespectsTouched(t *testing.T) {
	f := NewField("a")
	f = f.Derive("b")
	assert.Equal(t, "b", f.Value)
	assert.False(t, f.Touched)

	f = f.WithError("bad").Edit("c")
	assert.True(t, f.Touched)
	assert.Empty(t, f.Error)

	f = f.Derive("d")
	assert.Equal(t, "c", f.Value)
}

package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSetDeduplication(t *testing.T) {
	var s TagSet
	s, ok := s.Add("vegan")
	assert.True(t, ok)
	s, ok = s.Add("vegan")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s, ok = s.Add("Vegan")
	assert.True(t, ok)
	assert.Equal(t, []string{"vegan", "Vegan"}, s.Values())
}

func TestTagSetTrimAndEmpty(t *testing.T) {
	s := NewTagSet("  spicy ", "", "   ", "spicy", "گیاهی")
	assert.Equal(t, []string{"spicy", "گیاهی"}, s.Values())

	s = s.Remove("spicy")
	assert.Equal(t, []string{"گیاهی"}, s.Values())
	assert.False(t, s.Contains("spicy"))
}

func TestTagSetValuesNeverNil(t *testing.T) {
	var s TagSet
	assert.NotNil(t, s.Values())
	assert.Empty(t, s.Values())
}

func TestTagSetCopyOnWrite(t *testing.T) {
	a := NewTagSet("x")
	b, _ := a.Add("y")
	c, _ := a.Add("z")
	assert.Equal(t, []string{"x"}, a.Values())
	assert.Equal(t, []string{"x", "y"}, b.Values())
	assert.Equal(t, []string{"x", "z"}, c.Values())
}

func TestStagedInputCommit(t *testing.T) {
	set := NewTagSet("cheese")

	in, set, ok := StagedInput{Value: "tomato"}.Commit(set)
	assert.True(t, ok)
	assert.Empty(t, in.Value)
	assert.Equal(t, 2, set.Len())

	in, set, ok = StagedInput{Value: "cheese"}.Commit(set)
	assert.False(t, ok)
	assert.Equal(t, "cheese", in.Value)
	assert.Equal(t, 2, set.Len())
}

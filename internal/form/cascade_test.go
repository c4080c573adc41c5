package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuCategories() []CategoryOption {
	return []CategoryOption{
		{ID: "pizza", Name: "پیتزا", Subcategories: []SubcategoryOption{
			{ID: "p-margherita", NameFa: "margherita"},
			{ID: "p-pepperoni", NameFa: "pepperoni"},
		}},
		{ID: "drinks", Name: "نوشیدنی", Subcategories: []SubcategoryOption{
			{ID: "d-margherita", NameFa: "margherita"},
		}},
		{ID: "empty", Name: "خالی"},
	}
}

func TestCascadeCategoryChangeResetsSubcategory(t *testing.T) {
	c := NewCascade(menuCategories()).SetCategory("pizza")
	c, err := c.SetSubcategory("p-margherita")
	require.NoError(t, err)

	c = c.SetCategory("drinks")
	assert.Equal(t, "drinks", c.SelectedCategory)
	assert.Equal(t, "", c.SelectedSubcategory)

	// same category again still resets
	c, err = c.SetSubcategory("d-margherita")
	require.NoError(t, err)
	c = c.SetCategory("drinks")
	assert.Empty(t, c.SelectedSubcategory)
}

func TestCascadeOptions(t *testing.T) {
	c := NewCascade(menuCategories())
	assert.Empty(t, c.Options())
	assert.NotNil(t, c.Options())
	assert.True(t, c.Disabled())
	assert.Equal(t, PlaceholderSelectCategoryFirst, c.Placeholder())

	c = c.SetCategory("pizza")
	assert.Len(t, c.Options(), 2)
	assert.False(t, c.Disabled())
	assert.Equal(t, PlaceholderSelectSubcategory, c.Placeholder())

	c = c.SetCategory("empty")
	assert.Empty(t, c.Options())

	c = c.SetCategory("deleted-meanwhile")
	assert.Empty(t, c.Options())

	assert.Empty(t, Cascade{}.SetCategory("x").Options())
}

func TestCascadeSetSubcategoryErrors(t *testing.T) {
	c := NewCascade(menuCategories())
	_, err := c.SetSubcategory("p-margherita")
	assert.ErrorIs(t, err, ErrNoCategorySelected)

	c = c.SetCategory("drinks")
	_, err = c.SetSubcategory("p-margherita")
	assert.ErrorIs(t, err, ErrUnknownSubcategory)

	c, err = c.SetSubcategory("")
	assert.NoError(t, err)
	assert.Empty(t, c.SelectedSubcategory)
}

func TestLoadCascade(t *testing.T) {
	c := LoadCascade(menuCategories(), "pizza", "p-pepperoni")
	assert.Equal(t, "p-pepperoni", c.SelectedSubcategory)

	c = LoadCascade(menuCategories(), "pizza", "d-margherita")
	assert.Equal(t, "pizza", c.SelectedCategory)
	assert.Empty(t, c.SelectedSubcategory)
}

type row struct{ cat, sub string }

func (r row) CategoryID() string    { return r.cat }
func (r row) SubcategoryID() string { return r.sub }

func TestFilterByCategory(t *testing.T) {
	rows := []row{{"pizza", "a"}, {"pizza", "b"}, {"drinks", ""}}

	assert.Len(t, FilterByCategory(rows, "", ""), 3)
	assert.Equal(t, []row{{"pizza", "a"}, {"pizza", "b"}}, FilterByCategory(rows, "pizza", ""))
	assert.Equal(t, []row{{"pizza", "b"}}, FilterByCategory(rows, "pizza", "b"))
	assert.Empty(t, FilterByCategory(rows, "soups", ""))
}

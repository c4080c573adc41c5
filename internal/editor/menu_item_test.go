package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func pizzaCache() *CategoryCache {
	return NewCategoryCache(
		apiclient.Category{ID: "pizza", Name: "پیتزا", Subcategories: []apiclient.Subcategory{
			{ID: "p-margherita", NameFa: "margherita"},
		}},
		apiclient.Category{ID: "drinks", Name: "نوشیدنی", Order: 1, Subcategories: []apiclient.Subcategory{
			{ID: "d-margherita", NameFa: "margherita"},
		}},
	)
}

func TestMenuItemEditorCascade(t *testing.T) {
	e := NewMenuItemEditor(&fakeAPI{}, pizzaCache(), nil)
	assert.Empty(t, e.SubcategoryOptions())
	assert.Error(t, e.SetSubcategory("p-margherita"))

	e.SetCategory("pizza")
	require.NoError(t, e.SetSubcategory("p-margherita"))
	e.SetCategory("drinks")
	assert.Empty(t, e.Form().Selection.SelectedSubcategory)
	assert.Error(t, e.SetSubcategory("p-margherita"))
	assert.Len(t, e.SubcategoryOptions(), 1)
}

func TestMenuItemEditorTags(t *testing.T) {
	e := NewMenuItemEditor(&fakeAPI{}, nil, nil)

	e.Stage(Tags, "vegan")
	assert.True(t, e.Commit(Tags))
	assert.Empty(t, e.Staged(Tags))

	e.Stage(Tags, "vegan")
	assert.False(t, e.Commit(Tags))
	assert.Equal(t, "vegan", e.Staged(Tags))

	e.Stage(Tags, "Vegan")
	assert.True(t, e.Commit(Tags))

	e.Stage(Allergens, "gluten")
	assert.True(t, e.Commit(Allergens))
	e.RemoveTag(Tags, "vegan")

	f := e.Form()
	assert.Equal(t, []string{"Vegan"}, f.Tags.Values())
	assert.Equal(t, []string{"gluten"}, f.Allergens.Values())
	assert.Empty(t, f.Ingredients.Values())
}

func TestMenuItemEditorSubmitMapsPayload(t *testing.T) {
	api := &fakeAPI{}
	e := NewMenuItemEditor(api, pizzaCache(), nil)
	e.SetName("Margherita Pizza")
	e.SetText(ItemPrice, "۲۵۰٬۰۰۰")
	e.SetText(ItemPreparationTime, "15")
	e.SetFlag(ItemVisible, true)
	e.SetFlag(ItemSpicy, true)
	e.SetCategory("pizza")
	e.AddImage(form.UploadedImage{URL: "https://cdn.example.com/1.jpg", Name: "1.jpg", Size: 10, Type: "image/jpeg"})
	e.AddImage(form.UploadedImage{URL: "https://cdn.example.com/2.jpg"})
	require.NoError(t, e.RemoveImage(0))
	assert.Error(t, e.RemoveImage(4))

	item, err := e.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, api.items, 1)
	p := api.items[0]
	assert.Equal(t, "margherita-pizza", p.Slug)
	require.NotNil(t, p.Price)
	assert.Equal(t, 250000.0, *p.Price)
	assert.Equal(t, []string{"https://cdn.example.com/2.jpg"}, p.Images)
	assert.True(t, p.IsSpicy)
	assert.Empty(t, p.Subcategory)

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "item-1", e.ID())
	assert.Equal(t, "250000", e.Form().Price)
	assert.Equal(t, "pizza", e.Form().Selection.SelectedCategory)
}

func TestMenuItemEditorInvalidPrice(t *testing.T) {
	api := &fakeAPI{}
	e := NewMenuItemEditor(api, pizzaCache(), nil)
	e.SetName("Soup")
	e.SetText(ItemPrice, "cheap")
	e.SetCategory("drinks")

	_, err := e.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, e.Errors(), "price")
	assert.Empty(t, api.items)
}

func TestEditMenuItemRestoresSelection(t *testing.T) {
	price := 9.5
	e := EditMenuItem(&fakeAPI{}, pizzaCache(), nil, apiclient.MenuItem{
		ID: "m1",
		MenuItemPayload: form.MenuItemPayload{
			Name: "Lemonade", Slug: "lemonade", Price: &price,
			Category: "drinks", Subcategory: "d-margherita",
			Tags: []string{"cold", "cold"},
		},
	})
	f := e.Form()
	assert.Equal(t, "9.5", f.Price)
	assert.Equal(t, "d-margherita", f.Selection.SelectedSubcategory)
	assert.Equal(t, 1, f.Tags.Len())
	assert.True(t, f.Name.Target.Touched)
}

package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

func ptr[T any](v T) *T { return &v }

func TestProviderServiceFirstUpdateNeedsProfile(t *testing.T) {
	store := newMemoryStore()
	svc := NewProviderService(providerRepo{store}, store, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "p1", "p1", UpdateProviderCommand{Settings: ptr(form.DefaultProviderSettings())})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)

	p, err := svc.Update(ctx, "p1", "p1", UpdateProviderCommand{
		Profile: &ProviderProfileCommand{BusinessName: "Roma Pizza", Cuisines: []string{"Italian", "Italian"}},
	})
	require.NoError(t, err)
	assert.Equal(t, admindomain.Slug("roma-pizza"), p.Slug)
	assert.Equal(t, admindomain.TagList{"Italian"}, p.Cuisines)
	assert.Len(t, p.WorkingHours.Records(), 7)
	assert.Equal(t, "IRR", p.Settings.Currency)
	assert.Equal(t, []string{"p1"}, store.invalidated)
}

func TestProviderServicePartialUpdateKeepsProfile(t *testing.T) {
	store := newMemoryStore()
	svc := NewProviderService(providerRepo{store}, store, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "p1", "p1", UpdateProviderCommand{
		Profile: &ProviderProfileCommand{BusinessName: "Roma", Email: "owner@roma.ir"},
	})
	require.NoError(t, err)

	settings := form.DefaultProviderSettings()
	settings.ShowPrices = false
	p, err := svc.Update(ctx, "p1", "p1", UpdateProviderCommand{Settings: &settings})
	require.NoError(t, err)
	assert.Equal(t, admindomain.Email("owner@roma.ir"), p.Email)
	assert.False(t, p.Settings.ShowPrices)

	settings.ThemeColor = "red"
	_, err = svc.Update(ctx, "p1", "p1", UpdateProviderCommand{Settings: &settings})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)
}

func TestProviderServiceGuards(t *testing.T) {
	store := newMemoryStore()
	svc := NewProviderService(providerRepo{store}, store, nil)
	ctx := context.Background()

	_, err := svc.Detail(ctx, "p1", "p2")
	assert.ErrorIs(t, err, admindomain.ErrForbidden)

	_, err = svc.Update(ctx, "p1", "p1", UpdateProviderCommand{Profile: &ProviderProfileCommand{BusinessName: "Roma"}})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "p2", "p2", UpdateProviderCommand{Profile: &ProviderProfileCommand{BusinessName: "Roma!"}})
	assert.ErrorIs(t, err, admindomain.ErrConflict)

	_, err = svc.Update(ctx, "p3", "p3", UpdateProviderCommand{Profile: &ProviderProfileCommand{BusinessName: "رستوران"}})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)

	hours := []form.WorkingHourRecord{{Day: form.Sunday, IsOpen: true, OpenTime: "25:00", CloseTime: "23:00"}}
	_, err = svc.Update(ctx, "p1", "p1", UpdateProviderCommand{WorkingHours: &hours})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)

	branches := []form.BranchPayload{{Name: "Vanak"}}
	_, err = svc.Update(ctx, "p1", "p1", UpdateProviderCommand{Branches: &branches})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)
}

func TestCategoryServiceKeepsSubcategoryIDs(t *testing.T) {
	store := newMemoryStore()
	svc := NewCategoryService(categoryRepo{store}, menuItemRepo{store}, store, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, "p1", UpsertCategoryCommand{
		Name:      "پیش غذا",
		IsActive:  true,
		IsVisible: true,
		Subcategories: []admindomain.SubcategoryInput{
			{NameFa: "سالاد"},
			{NameFa: "سوپ"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, admindomain.Slug("پیش-غذا"), c.Slug)
	require.Len(t, c.Subcategories, 2)
	saladID := c.Subcategories[0].ID
	assert.NotEmpty(t, saladID)

	updated, err := svc.Update(ctx, "p1", c.ID, UpsertCategoryCommand{
		Name: "پیش غذا",
		Subcategories: []admindomain.SubcategoryInput{
			{ID: saladID, NameFa: "سالاد فصل"},
			{ID: "forged", NameFa: "نان"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, saladID, updated.Subcategories[0].ID)
	assert.NotEqual(t, "forged", updated.Subcategories[1].ID)

	_, err = svc.Detail(ctx, "p2", c.ID)
	assert.ErrorIs(t, err, admindomain.ErrNotFound)

	_, err = svc.Create(ctx, "p1", UpsertCategoryCommand{Name: "x", Slug: "پیش غذا"})
	assert.ErrorIs(t, err, admindomain.ErrConflict)

	_, err = svc.Create(ctx, "p1", UpsertCategoryCommand{Name: "x", Order: -1})
	assert.ErrorIs(t, err, admindomain.ErrInvalid)

	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, admindomain.ErrForbidden)
}

func TestCategoryDeleteRefusesWhileItemsRemain(t *testing.T) {
	store := newMemoryStore()
	categories := NewCategoryService(categoryRepo{store}, menuItemRepo{store}, store, nil)
	items := NewMenuItemService(menuItemRepo{store}, categoryRepo{store}, store, nil)
	ctx := context.Background()

	c, err := categories.Create(ctx, "p1", UpsertCategoryCommand{Name: "Pizza"})
	require.NoError(t, err)
	item, err := items.Create(ctx, "p1", UpsertMenuItemCommand{Name: "Margherita", Price: ptr(250000.0), CategoryID: c.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, categories.Delete(ctx, "p1", c.ID), admindomain.ErrConflict)
	require.NoError(t, items.Delete(ctx, "p1", item.ID))
	require.NoError(t, categories.Delete(ctx, "p1", c.ID))
	assert.ErrorIs(t, categories.Delete(ctx, "p1", c.ID), admindomain.ErrNotFound)
}

func TestMenuItemServiceValidation(t *testing.T) {
	store := newMemoryStore()
	categories := NewCategoryService(categoryRepo{store}, menuItemRepo{store}, store, nil)
	items := NewMenuItemService(menuItemRepo{store}, categoryRepo{store}, store, nil)
	ctx := context.Background()

	c, err := categories.Create(ctx, "p1", UpsertCategoryCommand{
		Name:          "Pizza",
		Subcategories: []admindomain.SubcategoryInput{{NameFa: "ایتالیایی"}},
	})
	require.NoError(t, err)
	subID := c.Subcategories[0].ID

	item, err := items.Create(ctx, "p1", UpsertMenuItemCommand{
		Name:          "Margherita Pizza",
		Price:         ptr(250000.0),
		CategoryID:    c.ID,
		SubcategoryID: subID,
		Tags:          []string{"vegan", "vegan", " "},
		Calories:      ptr(800),
		IsAvailable:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, admindomain.Slug("margherita-pizza"), item.Slug)
	assert.Equal(t, admindomain.TagList{"vegan"}, item.Tags)
	assert.Equal(t, 800, *item.Calories)

	cases := map[string]UpsertMenuItemCommand{
		"missing price":       {Name: "a", CategoryID: c.ID},
		"zero price":          {Name: "a", CategoryID: c.ID, Price: ptr(0.0)},
		"missing category":    {Name: "a", Price: ptr(1.0)},
		"foreign category":    {Name: "a", Price: ptr(1.0), CategoryID: "nope"},
		"foreign subcategory": {Name: "a", Price: ptr(1.0), CategoryID: c.ID, SubcategoryID: "nope"},
		"negative calories":   {Name: "a", Price: ptr(1.0), CategoryID: c.ID, Calories: ptr(-1)},
		"missing name":        {Price: ptr(1.0), CategoryID: c.ID},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := items.Create(ctx, "p1", cmd)
			assert.ErrorIs(t, err, admindomain.ErrInvalid)
		})
	}

	_, err = items.Update(ctx, "p2", item.ID, UpsertMenuItemCommand{Name: "x", Price: ptr(1.0), CategoryID: c.ID})
	assert.ErrorIs(t, err, admindomain.ErrNotFound)

	listed, err := items.List(ctx, "p1", MenuItemFilter{CategoryID: c.ID})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	publicdomain "github.com/sngm3741/menu-studio/api/internal/public/domain"
)

func TestStoreScopesByTenant(t *testing.T) {
	store := New()
	ctx := context.Background()

	c := &admindomain.Category{ProviderID: "p1", Name: "Pizza"}
	require.NoError(t, store.Categories().Create(ctx, c))
	require.NotEmpty(t, c.ID)

	_, err := store.Categories().FindByID(ctx, "p2", c.ID)
	assert.ErrorIs(t, err, admindomain.ErrNotFound)
	assert.ErrorIs(t, store.Categories().Delete(ctx, "p2", c.ID), admindomain.ErrNotFound)

	other := *c
	other.ProviderID = "p2"
	assert.ErrorIs(t, store.Categories().Update(ctx, &other), admindomain.ErrNotFound)
}

func TestMenuItemFilter(t *testing.T) {
	store := New()
	ctx := context.Background()
	items := store.MenuItems()

	for _, it := range []admindomain.MenuItem{
		{ProviderID: "p1", Name: "Margherita", CategoryID: "pizza", Order: 2},
		{ProviderID: "p1", Name: "Pepperoni", CategoryID: "pizza", SubcategoryID: "meat", Order: 1},
		{ProviderID: "p1", Name: "Lemonade", CategoryID: "drinks", Description: "fresh lemon"},
		{ProviderID: "p2", Name: "Foreign", CategoryID: "pizza"},
	} {
		it := it
		require.NoError(t, items.Create(ctx, &it))
	}

	got, err := items.Find(ctx, "p1", adminapp.MenuItemFilter{CategoryID: "pizza"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, admindomain.Name("Pepperoni"), got[0].Name)

	got, err = items.Find(ctx, "p1", adminapp.MenuItemFilter{Keyword: "LEMON"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = items.Find(ctx, "p1", adminapp.MenuItemFilter{CategoryID: "pizza", SubcategoryID: "meat"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	n, err := items.CountByCategory(ctx, "p1", "pizza")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestMenuRepositoryStorefront(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.Providers().Save(ctx, &admindomain.Provider{ID: "p1", BusinessName: "Roma", Slug: "roma"}))

	sf, err := store.Menus().FindStorefront(ctx, "roma")
	require.NoError(t, err)
	assert.Equal(t, "p1", sf.ID)

	_, err = store.Menus().FindStorefront(ctx, "nope")
	assert.ErrorIs(t, err, publicdomain.ErrNotFound)

	taken, err := store.Providers().SlugTaken(ctx, "roma", "p2")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = store.Providers().SlugTaken(ctx, "roma", "p1")
	require.NoError(t, err)
	assert.False(t, taken)
}

package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/infrastructure/memory"
	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

// asTenant stands in for the JWT middleware.
func asTenant(providerID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "u-" + providerID, ProviderID: providerID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newServer(t *testing.T, store *memory.Store, tenant string) *httptest.Server {
	t.Helper()
	logger := zaptest.NewLogger(t)
	h := NewHandler(Config{
		Logger:          logger,
		ProviderService: adminapp.NewProviderService(store.Providers(), nil, logger),
		CategoryService: adminapp.NewCategoryService(store.Categories(), store.MenuItems(), nil, logger),
		MenuItemService: adminapp.NewMenuItemService(store.MenuItems(), store.Categories(), nil, logger),
	})
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		if tenant != "" {
			r.Use(asTenant(tenant))
		}
		h.Register(r)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(apiclient.Config{BaseURL: baseURL, Auth: apiclient.StaticAuth{Token: "t"}})
	require.NoError(t, err)
	return c
}

func TestProviderRoundTrip(t *testing.T) {
	store := memory.New()
	client := newClient(t, newServer(t, store, "p1").URL)
	ctx := context.Background()

	_, err := client.UpdateProviderSettings(ctx, "p1", form.MapProviderSettings(form.DefaultProviderSettings()))
	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	email := "owner@roma.ir"
	saved, err := client.UpdateProvider(ctx, "p1", form.ProviderPayload{
		BusinessName: "Roma Pizza",
		Email:        &email,
		Cuisines:     []string{"Italian"},
		Branches:     []form.BranchPayload{{Name: "Vanak", Address: "Vanak Sq."}},
		WorkingHours: form.DefaultWorkingHours().Records(),
	})
	require.NoError(t, err)
	assert.Equal(t, "roma-pizza", saved.Slug)
	assert.Equal(t, "IRR", saved.Settings.Currency)
	require.NotNil(t, saved.Email)
	assert.Nil(t, saved.Website)

	settings := form.DefaultProviderSettings()
	settings.ShowPrices = false
	saved, err = client.UpdateProviderSettings(ctx, "p1", form.MapProviderSettings(settings))
	require.NoError(t, err)
	assert.False(t, saved.Settings.ShowPrices)
	assert.Equal(t, "Roma Pizza", saved.BusinessName)
	assert.Len(t, saved.Branches, 1)

	_, err = client.GetProvider(ctx, "p2")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestCategoryAndMenuItemFlow(t *testing.T) {
	store := memory.New()
	client := newClient(t, newServer(t, store, "p1").URL)
	ctx := context.Background()

	f := form.CategoryForm{
		Name:          form.NewSlugDerivation(form.PersianSlug).SetSource("پیش غذا"),
		IsActive:      true,
		IsVisible:     true,
		Subcategories: form.NewSubcategories(form.SubcategoryRecord{NameFa: "سالاد"}, form.SubcategoryRecord{NameFa: "سوپ"}),
	}
	category, err := client.CreateCategory(ctx, form.MapCategory(f))
	require.NoError(t, err)
	assert.Equal(t, "پیش-غذا", category.Slug)
	require.Len(t, category.Subcategories, 2)
	soup := category.Subcategories[1].ID

	price := 120000.0
	item, err := client.CreateMenuItem(ctx, form.MenuItemPayload{
		Name:        "Soup of the day",
		Price:       &price,
		Category:    category.ID,
		Subcategory: soup,
		Tags:        []string{"hot", "hot"},
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "soup-of-the-day", item.Slug)
	assert.Equal(t, []string{"hot"}, item.Tags)

	listed, err := client.ListMenuItems(ctx, apiclient.MenuItemFilter{Category: category.ID, Subcategory: soup})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = client.CreateMenuItem(ctx, form.MenuItemPayload{Name: "x", Price: &price, Category: category.ID, Subcategory: "nope"})
	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	err = client.DeleteCategory(ctx, category.ID)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	require.NoError(t, client.DeleteMenuItem(ctx, item.ID))
	require.NoError(t, client.DeleteCategory(ctx, category.ID))

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestContractViolationsAreRejected(t *testing.T) {
	srv := newServer(t, memory.New(), "p1")

	res, err := http.Post(srv.URL+"/api/menu-items", "application/json", bytes.NewBufferString(`{"name":"x","category":"c"}`))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var env common.Envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	assert.False(t, env.OK)
	assert.Contains(t, env.Error, "price")
}

func TestMissingUserIsUnauthorized(t *testing.T) {
	srv := newServer(t, memory.New(), "")

	res, err := http.Get(srv.URL + "/api/categories")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *MenuCache) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewMenuCache(client, time.Minute)
}

func TestMenuCacheRoundTrip(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	got, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	price := 250000.0
	menu := &domain.Menu{
		Storefront: domain.Storefront{ID: "p1", Slug: "roma", Settings: form.DefaultProviderSettings(), UpdatedAt: time.Unix(100, 0).UTC()},
		Sections: []domain.Section{{
			Category: domain.Category{ID: "c1", Name: "پیتزا"},
			Items:    []domain.MenuItem{{ID: "m1", Name: "Margherita", Price: &price}},
		}},
	}
	require.NoError(t, cache.Set(ctx, "p1", menu))
	assert.True(t, mr.Exists("menu:p1"))
	assert.Equal(t, time.Minute, mr.TTL("menu:p1"))

	got, err = cache.Get(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "پیتزا", got.Sections[0].Category.Name)
	assert.Equal(t, 250000.0, *got.Sections[0].Items[0].Price)
	assert.True(t, got.Storefront.UpdatedAt.Equal(menu.Storefront.UpdatedAt))

	require.NoError(t, cache.Invalidate(ctx, "p1"))
	assert.False(t, mr.Exists("menu:p1"))
}

func TestMenuCacheExpiresAndRejectsGarbage(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "p1", &domain.Menu{}))
	mr.FastForward(2 * time.Minute)
	got, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, mr.Set("menu:p2", "not json"))
	_, err = cache.Get(ctx, "p2")
	assert.Error(t, err)
}

func TestNewClientPing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewClient(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewClient(context.Background(), Options{Addr: mr.Addr()})
	assert.Error(t, err)
}

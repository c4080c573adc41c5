package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

const keyPrefix = "menu:"

// Options configures the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient opens a pooled client and pings it.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// MenuCache keeps assembled storefront menus as JSON under menu:{providerID}.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func key(providerID string) string {
	return keyPrefix + providerID
}

// Get returns nil, nil on a miss.
func (c *MenuCache) Get(ctx context.Context, providerID string) (*domain.Menu, error) {
	raw, err := c.client.Get(ctx, key(providerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var menu domain.Menu
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, fmt.Errorf("decode cached menu: %w", err)
	}
	return &menu, nil
}

func (c *MenuCache) Set(ctx context.Context, providerID string, menu *domain.Menu) error {
	data, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(providerID), data, c.ttl).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, providerID string) error {
	return c.client.Del(ctx, key(providerID)).Err()
}

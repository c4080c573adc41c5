package editor

import (
	"context"
	"sort"
	"sync"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// CategoryLister loads the tenant's categories.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]apiclient.Category, error)
}

// CategoryCache is the dashboard's local copy of the category list. Menu
// item cascades are built from it and category submits update it in place.
type CategoryCache struct {
	mu    sync.RWMutex
	items []apiclient.Category
}

func NewCategoryCache(categories ...apiclient.Category) *CategoryCache {
	c := &CategoryCache{}
	c.replace(categories)
	return c
}

// Refresh reloads the list from the API. The cache is left as is on error.
func (c *CategoryCache) Refresh(ctx context.Context, lister CategoryLister) error {
	categories, err := lister.ListCategories(ctx)
	if err != nil {
		return err
	}
	c.replace(categories)
	return nil
}

func (c *CategoryCache) replace(categories []apiclient.Category) {
	items := append([]apiclient.Category(nil), categories...)
	sortCategories(items)
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Put inserts or replaces a category by id.
func (c *CategoryCache) Put(cat apiclient.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]apiclient.Category, 0, len(c.items)+1)
	for _, existing := range c.items {
		if existing.ID != cat.ID {
			items = append(items, existing)
		}
	}
	items = append(items, cat)
	sortCategories(items)
	c.items = items
}

// Remove drops a category by id.
func (c *CategoryCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]apiclient.Category, 0, len(c.items))
	for _, existing := range c.items {
		if existing.ID != id {
			items = append(items, existing)
		}
	}
	c.items = items
}

// List returns the cached categories ordered for display.
func (c *CategoryCache) List() []apiclient.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]apiclient.Category{}, c.items...)
}

// Options returns the categories as cascade entries.
func (c *CategoryCache) Options() []form.CategoryOption {
	items := c.List()
	out := make([]form.CategoryOption, 0, len(items))
	for _, cat := range items {
		out = append(out, cat.Option())
	}
	return out
}

func sortCategories(items []apiclient.Category) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Name < items[j].Name
	})
}

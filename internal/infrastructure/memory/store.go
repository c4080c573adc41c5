// Package memory keeps every tenant's data in process. It backs local runs
// without MongoDB and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
)

// Store holds providers, categories and menu items.
type Store struct {
	mu         sync.RWMutex
	providers  map[string]admindomain.Provider
	categories map[string]admindomain.Category
	items      map[string]admindomain.MenuItem
}

func New() *Store {
	return &Store{
		providers:  map[string]admindomain.Provider{},
		categories: map[string]admindomain.Category{},
		items:      map[string]admindomain.MenuItem{},
	}
}

func (s *Store) Providers() *ProviderRepository { return &ProviderRepository{s} }
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s} }
func (s *Store) MenuItems() *MenuItemRepository { return &MenuItemRepository{s} }
func (s *Store) Menus() *MenuRepository { return &MenuRepository{s} }

type ProviderRepository struct{ s *Store }

func (r *ProviderRepository) FindByID(_ context.Context, id string) (*admindomain.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.providers[id]
	if !ok {
		return nil, admindomain.ErrNotFound
	}
	return &p, nil
}

func (r *ProviderRepository) Save(_ context.Context, p *admindomain.Provider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.providers[p.ID] = *p
	return nil
}

func (r *ProviderRepository) SlugTaken(_ context.Context, slug, exceptID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for id, p := range r.s.providers {
		if id != exceptID && p.Slug.String() == slug {
			return true, nil
		}
	}
	return false, nil
}

type CategoryRepository struct{ s *Store }

func (r *CategoryRepository) Find(_ context.Context, providerID string) ([]admindomain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]admindomain.Category, 0)
	for _, c := range r.s.categories {
		if c.ProviderID == providerID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return byOrderThenName(out[i].Order, out[j].Order, out[i].Name.String(), out[j].Name.String())
	})
	return out, nil
}

func (r *CategoryRepository) FindByID(_ context.Context, providerID, id string) (*admindomain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok || c.ProviderID != providerID {
		return nil, admindomain.ErrNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) Create(_ context.Context, c *admindomain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = ulid.Make().String()
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, c *admindomain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.categories[c.ID]; !ok || old.ProviderID != c.ProviderID {
		return admindomain.ErrNotFound
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, providerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; !ok || c.ProviderID != providerID {
		return admindomain.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

type MenuItemRepository struct{ s *Store }

func (r *MenuItemRepository) Find(_ context.Context, providerID string, filter adminapp.MenuItemFilter) ([]admindomain.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	out := make([]admindomain.MenuItem, 0)
	for _, it := range r.s.items {
		switch {
		case it.ProviderID != providerID:
		case filter.CategoryID != "" && it.CategoryID != filter.CategoryID:
		case filter.SubcategoryID != "" && it.SubcategoryID != filter.SubcategoryID:
		case keyword != "" && !strings.Contains(strings.ToLower(it.Name.String()+" "+it.Description), keyword):
		default:
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return byOrderThenName(out[i].Order, out[j].Order, out[i].Name.String(), out[j].Name.String())
	})
	return out, nil
}

func (r *MenuItemRepository) FindByID(_ context.Context, providerID, id string) (*admindomain.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok || it.ProviderID != providerID {
		return nil, admindomain.ErrNotFound
	}
	return &it, nil
}

func (r *MenuItemRepository) Create(_ context.Context, it *admindomain.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it.ID = ulid.Make().String()
	r.s.items[it.ID] = *it
	return nil
}

func (r *MenuItemRepository) Update(_ context.Context, it *admindomain.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if old, ok := r.s.items[it.ID]; !ok || old.ProviderID != it.ProviderID {
		return admindomain.ErrNotFound
	}
	r.s.items[it.ID] = *it
	return nil
}

func (r *MenuItemRepository) Delete(_ context.Context, providerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if it, ok := r.s.items[id]; !ok || it.ProviderID != providerID {
		return admindomain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

func (r *MenuItemRepository) CountByCategory(_ context.Context, providerID, categoryID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, it := range r.s.items {
		if it.ProviderID == providerID && it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func byOrderThenName(a, b int, nameA, nameB string) bool {
	if a != b {
		return a < b
	}
	return nameA < nameB
}

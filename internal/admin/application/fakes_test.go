package application

import (
	"context"
	"fmt"
	"sync"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
)

type memoryStore struct {
	mu          sync.Mutex
	seq         int
	providers   map[string]admindomain.Provider
	categories  map[string]admindomain.Category
	items       map[string]admindomain.MenuItem
	invalidated []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		providers:  map[string]admindomain.Provider{},
		categories: map[string]admindomain.Category{},
		items:      map[string]admindomain.MenuItem{},
	}
}

func (m *memoryStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memoryStore) Invalidate(_ context.Context, providerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, providerID)
	return nil
}

type providerRepo struct{ *memoryStore }

func (r providerRepo) FindByID(_ context.Context, id string) (*admindomain.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, admindomain.ErrNotFound
	}
	return &p, nil
}

func (r providerRepo) Save(_ context.Context, p *admindomain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.ID] = *p
	return nil
}

func (r providerRepo) SlugTaken(_ context.Context, slug, exceptID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.providers {
		if id != exceptID && p.Slug.String() == slug {
			return true, nil
		}
	}
	return false, nil
}

type categoryRepo struct{ *memoryStore }

func (r categoryRepo) Find(_ context.Context, providerID string) ([]admindomain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []admindomain.Category
	for _, c := range r.categories {
		if c.ProviderID == providerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r categoryRepo) FindByID(_ context.Context, providerID, id string) (*admindomain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok || c.ProviderID != providerID {
		return nil, admindomain.ErrNotFound
	}
	return &c, nil
}

func (r categoryRepo) Create(_ context.Context, c *admindomain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID("cat")
	r.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) Update(_ context.Context, c *admindomain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) Delete(_ context.Context, providerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; !ok || c.ProviderID != providerID {
		return admindomain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

type menuItemRepo struct{ *memoryStore }

func (r menuItemRepo) Find(_ context.Context, providerID string, filter MenuItemFilter) ([]admindomain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []admindomain.MenuItem
	for _, it := range r.items {
		if it.ProviderID != providerID {
			continue
		}
		if filter.CategoryID != "" && it.CategoryID != filter.CategoryID {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r menuItemRepo) FindByID(_ context.Context, providerID, id string) (*admindomain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok || it.ProviderID != providerID {
		return nil, admindomain.ErrNotFound
	}
	return &it, nil
}

func (r menuItemRepo) Create(_ context.Context, it *admindomain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it.ID = r.nextID("item")
	r.items[it.ID] = *it
	return nil
}

func (r menuItemRepo) Update(_ context.Context, it *admindomain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[it.ID] = *it
	return nil
}

func (r menuItemRepo) Delete(_ context.Context, providerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[id]; !ok || it.ProviderID != providerID {
		return admindomain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r menuItemRepo) CountByCategory(_ context.Context, providerID, categoryID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, it := range r.items {
		if it.ProviderID == providerID && it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

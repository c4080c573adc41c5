package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sngm3741/menu-studio/api/internal/form"
)

// Provider is a business profile as the API returns it.
type Provider struct {
	ID string `json:"id"`
	form.ProviderPayload
	Settings  form.ProviderSettings `json:"settings"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// Subcategory carries its server id so edits keep menu item references.
type Subcategory struct {
	ID     string `json:"id"`
	NameFa string `json:"name_fa"`
	NameEn string `json:"name_en"`
}

// Category as the API returns it.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameEn        string        `json:"nameEn"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Order         int           `json:"order"`
	IsActive      bool          `json:"isActive"`
	IsVisible     bool          `json:"isVisible"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Option converts the category to a cascade entry.
func (c Category) Option() form.CategoryOption {
	subs := make([]form.SubcategoryOption, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, form.SubcategoryOption{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return form.CategoryOption{ID: c.ID, Name: c.Name, NameEn: c.NameEn, Subcategories: subs}
}

// MenuItem as the API returns it.
type MenuItem struct {
	ID string `json:"id"`
	form.MenuItemPayload
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m MenuItem) CategoryID() string    { return m.Category }
func (m MenuItem) SubcategoryID() string { return m.Subcategory }

// MenuItemFilter narrows ListMenuItems.
type MenuItemFilter struct {
	Category    string
	Subcategory string
	Query       string
}

func (f MenuItemFilter) values() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Subcategory != "" {
		q.Set("subcategory", f.Subcategory)
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	return q
}

// ---- providers ----

func (c *Client) GetProvider(ctx context.Context, id string) (Provider, error) {
	return do[Provider](ctx, c, http.MethodGet, "/api/providers/"+url.PathEscape(id), nil, nil)
}

// UpdateProvider replaces the profile part of a provider. The first call for
// a tenant creates it.
func (c *Client) UpdateProvider(ctx context.Context, id string, payload form.ProviderPayload) (Provider, error) {
	return do[Provider](ctx, c, http.MethodPut, "/api/providers/"+url.PathEscape(id), nil, payload)
}

// UpdateProviderSettings sends only the settings sub-object.
func (c *Client) UpdateProviderSettings(ctx context.Context, id string, payload form.SettingsPayload) (Provider, error) {
	return do[Provider](ctx, c, http.MethodPut, "/api/providers/"+url.PathEscape(id), nil, payload)
}

// ---- categories ----

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	out, err := do[[]Category](ctx, c, http.MethodGet, "/api/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Category{}
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, payload form.CategoryPayload) (Category, error) {
	return do[Category](ctx, c, http.MethodPost, "/api/categories", nil, payload)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, payload form.CategoryPayload) (Category, error) {
	return do[Category](ctx, c, http.MethodPut, "/api/categories/"+url.PathEscape(id), nil, payload)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := do[json.RawMessage](ctx, c, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil)
	return err
}

// ---- menu items ----

func (c *Client) ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]MenuItem, error) {
	out, err := do[[]MenuItem](ctx, c, http.MethodGet, "/api/menu-items", filter.values(), nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []MenuItem{}
	}
	return out, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, payload form.MenuItemPayload) (MenuItem, error) {
	return do[MenuItem](ctx, c, http.MethodPost, "/api/menu-items", nil, payload)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, payload form.MenuItemPayload) (MenuItem, error) {
	return do[MenuItem](ctx, c, http.MethodPut, "/api/menu-items/"+url.PathEscape(id), nil, payload)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	_, err := do[json.RawMessage](ctx, c, http.MethodDelete, "/api/menu-items/"+url.PathEscape(id), nil, nil)
	return err
}

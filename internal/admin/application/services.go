package application

import (
	"context"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ProviderRepository persists business profiles keyed by tenant id.
type ProviderRepository interface {
	FindByID(ctx context.Context, id string) (*admindomain.Provider, error)
	Save(ctx context.Context, provider *admindomain.Provider) error
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
}

// CategoryRepository exposes tenant-scoped category storage.
type CategoryRepository interface {
	Find(ctx context.Context, providerID string) ([]admindomain.Category, error)
	FindByID(ctx context.Context, providerID, id string) (*admindomain.Category, error)
	Create(ctx context.Context, category *admindomain.Category) error
	Update(ctx context.Context, category *admindomain.Category) error
	Delete(ctx context.Context, providerID, id string) error
}

// MenuItemRepository exposes tenant-scoped menu item storage.
type MenuItemRepository interface {
	Find(ctx context.Context, providerID string, filter MenuItemFilter) ([]admindomain.MenuItem, error)
	FindByID(ctx context.Context, providerID, id string) (*admindomain.MenuItem, error)
	Create(ctx context.Context, item *admindomain.MenuItem) error
	Update(ctx context.Context, item *admindomain.MenuItem) error
	Delete(ctx context.Context, providerID, id string) error
	CountByCategory(ctx context.Context, providerID, categoryID string) (int64, error)
}

// MenuCache drops the published menu of a tenant after a write.
type MenuCache interface {
	Invalidate(ctx context.Context, providerID string) error
}

// MenuItemFilter expresses dashboard search criteria.
type MenuItemFilter struct {
	CategoryID    string
	SubcategoryID string
	Keyword       string
}

// ProviderService describes business profile use-cases.
type ProviderService interface {
	Detail(ctx context.Context, tenantID, id string) (*admindomain.Provider, error)
	Update(ctx context.Context, tenantID, id string, cmd UpdateProviderCommand) (*admindomain.Provider, error)
}

// CategoryService describes category use-cases.
type CategoryService interface {
	List(ctx context.Context, tenantID string) ([]admindomain.Category, error)
	Detail(ctx context.Context, tenantID, id string) (*admindomain.Category, error)
	Create(ctx context.Context, tenantID string, cmd UpsertCategoryCommand) (*admindomain.Category, error)
	Update(ctx context.Context, tenantID, id string, cmd UpsertCategoryCommand) (*admindomain.Category, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// MenuItemService describes menu item use-cases.
type MenuItemService interface {
	List(ctx context.Context, tenantID string, filter MenuItemFilter) ([]admindomain.MenuItem, error)
	Detail(ctx context.Context, tenantID, id string) (*admindomain.MenuItem, error)
	Create(ctx context.Context, tenantID string, cmd UpsertMenuItemCommand) (*admindomain.MenuItem, error)
	Update(ctx context.Context, tenantID, id string, cmd UpsertMenuItemCommand) (*admindomain.MenuItem, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// UpdateProviderCommand is a partial update. Nil sections are left as
// stored.
type UpdateProviderCommand struct {
	Profile      *ProviderProfileCommand
	Branches     *[]form.BranchPayload
	WorkingHours *[]form.WorkingHourRecord
	Settings     *form.ProviderSettings
}

// ProviderProfileCommand holds the scalar profile fields.
type ProviderProfileCommand struct {
	BusinessName string
	Slug         string
	Description  string
	Phone        string
	Email        string
	Website      string
	Address      string
	Logo         string
	CoverImage   string
	Cuisines     []string
	Features     []string
}

// UpsertCategoryCommand contains inputs for creating/updating categories.
type UpsertCategoryCommand struct {
	Name          string
	NameEn        string
	Slug          string
	Description   string
	Order         int
	IsActive      bool
	IsVisible     bool
	Subcategories []admindomain.SubcategoryInput
}

// UpsertMenuItemCommand contains inputs for creating/updating menu items.
type UpsertMenuItemCommand struct {
	Name            string
	Slug            string
	Description     string
	Price           *float64
	CategoryID      string
	SubcategoryID   string
	Images          []string
	Tags            []string
	Allergens       []string
	Ingredients     []string
	PreparationTime *int
	Calories        *int
	Order           int
	IsAvailable     bool
	IsFeatured      bool
	IsVegetarian    bool
	IsSpicy         bool
}

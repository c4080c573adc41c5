package application

import (
	"context"

	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

// MenuRepository is the read port for published menus.
type MenuRepository interface {
	FindStorefront(ctx context.Context, slug string) (*domain.Storefront, error)
	FindCategories(ctx context.Context, providerID string) ([]domain.Category, error)
	FindMenuItems(ctx context.Context, providerID string) ([]domain.MenuItem, error)
}

// MenuCache stores assembled menus by provider id. Get returns nil, nil on
// a miss.
type MenuCache interface {
	Get(ctx context.Context, providerID string) (*domain.Menu, error)
	Set(ctx context.Context, providerID string, menu *domain.Menu) error
}

// MenuQueryService describes storefront read use-cases.
type MenuQueryService interface {
	Menu(ctx context.Context, slug string) (*domain.Menu, error)
}

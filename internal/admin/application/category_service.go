package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

type categoryService struct {
	repo   CategoryRepository
	items  MenuItemRepository
	cache  MenuCache
	logger *zap.Logger
	now    func() time.Time
}

func NewCategoryService(repo CategoryRepository, items MenuItemRepository, cache MenuCache, logger *zap.Logger) CategoryService {
	return &categoryService{repo: repo, items: items, cache: cacheOrNop(cache), logger: loggerOrNop(logger), now: utcNow}
}

func (s *categoryService) List(ctx context.Context, tenantID string) ([]admindomain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, tenantID)
}

func (s *categoryService) Detail(ctx context.Context, tenantID, id string) (*admindomain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *categoryService) Create(ctx context.Context, tenantID string, cmd UpsertCategoryCommand) (*admindomain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	category := &admindomain.Category{ProviderID: tenantID}
	if err := s.apply(ctx, category, cmd); err != nil {
		return nil, err
	}
	category.CreatedAt = s.now()
	category.UpdatedAt = category.CreatedAt
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, tenantID, id string, cmd UpsertCategoryCommand) (*admindomain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	category, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, category, cmd); err != nil {
		return nil, err
	}
	category.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return category, nil
}

// Delete refuses to drop a category that still has menu items.
func (s *categoryService) Delete(ctx context.Context, tenantID, id string) error {
	if err := requireTenant(tenantID); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, tenantID, id); err != nil {
		return err
	}
	count, err := s.items.CountByCategory(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category still has %d menu items", admindomain.ErrConflict, count)
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return nil
}

func (s *categoryService) apply(ctx context.Context, c *admindomain.Category, cmd UpsertCategoryCommand) error {
	name, err := admindomain.NewName(cmd.Name, "name")
	if err != nil {
		return err
	}
	slug, err := admindomain.NewSlug(cmd.Slug, cmd.Name, form.PersianSlug)
	if err != nil {
		return err
	}
	if cmd.Order < 0 {
		return fmt.Errorf("%w: order cannot be negative", admindomain.ErrInvalid)
	}
	subs, err := admindomain.NewSubcategories(cmd.Subcategories, c.Subcategories)
	if err != nil {
		return err
	}
	if slug != c.Slug {
		siblings, err := s.repo.Find(ctx, c.ProviderID)
		if err != nil {
			return err
		}
		for _, other := range siblings {
			if other.ID != c.ID && other.Slug == slug {
				return fmt.Errorf("%w: slug %q is already used by another category", admindomain.ErrConflict, slug)
			}
		}
	}

	c.Name = name
	c.NameEn = strings.TrimSpace(cmd.NameEn)
	c.Slug = slug
	c.Description = strings.TrimSpace(cmd.Description)
	c.Order = cmd.Order
	c.IsActive = cmd.IsActive
	c.IsVisible = cmd.IsVisible
	c.Subcategories = subs
	return nil
}

func requireTenant(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return admindomain.ErrForbidden
	}
	return nil
}

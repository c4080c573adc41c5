package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

const maxMenuItemImages = 10

type menuItemService struct {
	repo       MenuItemRepository
	categories CategoryRepository
	cache      MenuCache
	logger     *zap.Logger
	now        func() time.Time
}

func NewMenuItemService(repo MenuItemRepository, categories CategoryRepository, cache MenuCache, logger *zap.Logger) MenuItemService {
	return &menuItemService{repo: repo, categories: categories, cache: cacheOrNop(cache), logger: loggerOrNop(logger), now: utcNow}
}

func (s *menuItemService) List(ctx context.Context, tenantID string, filter MenuItemFilter) ([]admindomain.MenuItem, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, tenantID, filter)
}

func (s *menuItemService) Detail(ctx context.Context, tenantID, id string) (*admindomain.MenuItem, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, tenantID, id)
}

func (s *menuItemService) Create(ctx context.Context, tenantID string, cmd UpsertMenuItemCommand) (*admindomain.MenuItem, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	item := &admindomain.MenuItem{ProviderID: tenantID}
	if err := s.apply(ctx, item, cmd); err != nil {
		return nil, err
	}
	item.CreatedAt = s.now()
	item.UpdatedAt = item.CreatedAt
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return item, nil
}

func (s *menuItemService) Update(ctx context.Context, tenantID, id string, cmd UpsertMenuItemCommand) (*admindomain.MenuItem, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, cmd); err != nil {
		return nil, err
	}
	item.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return item, nil
}

func (s *menuItemService) Delete(ctx context.Context, tenantID, id string) error {
	if err := requireTenant(tenantID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, tenantID)
	return nil
}

func (s *menuItemService) apply(ctx context.Context, item *admindomain.MenuItem, cmd UpsertMenuItemCommand) error {
	name, err := admindomain.NewName(cmd.Name, "name")
	if err != nil {
		return err
	}
	slug, err := admindomain.NewSlug(cmd.Slug, cmd.Name, form.PersianSlug)
	if err != nil {
		return err
	}
	price, err := admindomain.NewPrice(cmd.Price)
	if err != nil {
		return err
	}
	images, err := admindomain.NewPhotoURLList(cmd.Images, maxMenuItemImages)
	if err != nil {
		return err
	}
	prep, err := admindomain.NonNegative(cmd.PreparationTime, "preparationTime")
	if err != nil {
		return err
	}
	calories, err := admindomain.NonNegative(cmd.Calories, "calories")
	if err != nil {
		return err
	}

	categoryID := strings.TrimSpace(cmd.CategoryID)
	if categoryID == "" {
		return fmt.Errorf("%w: category is required", admindomain.ErrInvalid)
	}
	category, err := s.categories.FindByID(ctx, item.ProviderID, categoryID)
	if errors.Is(err, admindomain.ErrNotFound) {
		return fmt.Errorf("%w: unknown category %q", admindomain.ErrInvalid, categoryID)
	}
	if err != nil {
		return err
	}
	subcategoryID := strings.TrimSpace(cmd.SubcategoryID)
	if subcategoryID != "" && !category.HasSubcategory(subcategoryID) {
		return fmt.Errorf("%w: subcategory %q does not belong to category %q", admindomain.ErrInvalid, subcategoryID, categoryID)
	}

	item.Name = name
	item.Slug = slug
	item.Description = strings.TrimSpace(cmd.Description)
	item.Price = price
	item.CategoryID = categoryID
	item.SubcategoryID = subcategoryID
	item.Images = images
	item.Tags = admindomain.NewTagList(cmd.Tags)
	item.Allergens = admindomain.NewTagList(cmd.Allergens)
	item.Ingredients = admindomain.NewTagList(cmd.Ingredients)
	item.PreparationTime = prep
	item.Calories = calories
	item.Order = cmd.Order
	item.IsAvailable = cmd.IsAvailable
	item.IsFeatured = cmd.IsFeatured
	item.IsVegetarian = cmd.IsVegetarian
	item.IsSpicy = cmd.IsSpicy
	return nil
}

package memory

import (
	"context"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

// MenuRepository reads the storefront view of the store.
type MenuRepository struct{ s *Store }

func (r *MenuRepository) FindStorefront(_ context.Context, slug string) (*domain.Storefront, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.providers {
		if p.Slug.String() != slug {
			continue
		}
		branches := make([]domain.Branch, 0, len(p.Branches))
		for _, b := range p.Branches {
			branches = append(branches, domain.Branch{Name: b.Name, Address: b.Address, Lat: b.Coordinates.Lat, Lng: b.Coordinates.Lng})
		}
		return &domain.Storefront{
			ID:           p.ID,
			BusinessName: p.BusinessName.String(),
			Slug:         p.Slug.String(),
			Description:  p.Description,
			Phone:        p.Phone,
			Email:        p.Email.String(),
			Website:      p.Website.String(),
			Address:      p.Address,
			Logo:         p.Logo.String(),
			CoverImage:   p.CoverImage.String(),
			Cuisines:     p.Cuisines.Strings(),
			Features:     p.Features.Strings(),
			Branches:     branches,
			WorkingHours: p.WorkingHours.Records(),
			Settings:     form.ProviderSettings(p.Settings),
			UpdatedAt:    p.UpdatedAt,
		}, nil
	}
	return nil, domain.ErrNotFound
}

func (r *MenuRepository) FindCategories(ctx context.Context, providerID string) ([]domain.Category, error) {
	stored, err := r.s.Categories().Find(ctx, providerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(stored))
	for _, c := range stored {
		subs := make([]domain.Subcategory, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, domain.Subcategory{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
		}
		out = append(out, domain.Category{
			ID:            c.ID,
			Name:          c.Name.String(),
			NameEn:        c.NameEn,
			Slug:          c.Slug.String(),
			Description:   c.Description,
			Order:         c.Order,
			IsActive:      c.IsActive,
			IsVisible:     c.IsVisible,
			Subcategories: subs,
		})
	}
	return out, nil
}

func (r *MenuRepository) FindMenuItems(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	stored, err := r.s.MenuItems().Find(ctx, providerID, adminapp.MenuItemFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(stored))
	for _, it := range stored {
		price := it.Price.Float64()
		out = append(out, domain.MenuItem{
			ID:              it.ID,
			CategoryID:      it.CategoryID,
			SubcategoryID:   it.SubcategoryID,
			Name:            it.Name.String(),
			Slug:            it.Slug.String(),
			Description:     it.Description,
			Price:           &price,
			Images:          it.Images.Strings(),
			Tags:            it.Tags.Strings(),
			Allergens:       it.Allergens.Strings(),
			Ingredients:     it.Ingredients.Strings(),
			PreparationTime: it.PreparationTime,
			Calories:        it.Calories,
			Order:           it.Order,
			IsAvailable:     it.IsAvailable,
			IsFeatured:      it.IsFeatured,
			IsVegetarian:    it.IsVegetarian,
			IsSpicy:         it.IsSpicy,
		})
	}
	return out, nil
}

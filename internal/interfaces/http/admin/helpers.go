package admin

import (
	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

func providerToResponse(p admindomain.Provider) providerResponse {
	branches := make([]form.BranchPayload, 0, len(p.Branches))
	for _, b := range p.Branches {
		branches = append(branches, form.BranchPayload{Name: b.Name, Address: b.Address, Coordinates: b.Coordinates})
	}
	return providerResponse{
		ID: p.ID,
		ProviderPayload: form.ProviderPayload{
			BusinessName: p.BusinessName.String(),
			Slug:         p.Slug.String(),
			Description:  p.Description,
			Phone:        p.Phone,
			Email:        form.OptionalString(p.Email.String()),
			Website:      form.OptionalString(p.Website.String()),
			Address:      p.Address,
			Logo:         p.Logo.String(),
			CoverImage:   p.CoverImage.String(),
			Cuisines:     p.Cuisines.Strings(),
			Features:     p.Features.Strings(),
			Branches:     branches,
			WorkingHours: p.WorkingHours.Records(),
		},
		Settings:  form.ProviderSettings(p.Settings),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func categoryToResponse(c admindomain.Category) categoryResponse {
	subs := make([]subcategoryResponse, 0, len(c.Subcategories))
	for _, s := range c.Subcategories {
		subs = append(subs, subcategoryResponse{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return categoryResponse{
		ID:            c.ID,
		Name:          c.Name.String(),
		NameEn:        c.NameEn,
		Slug:          c.Slug.String(),
		Description:   c.Description,
		Order:         c.Order,
		IsActive:      c.IsActive,
		IsVisible:     c.IsVisible,
		Subcategories: subs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func menuItemToResponse(item admindomain.MenuItem) menuItemResponse {
	price := item.Price.Float64()
	return menuItemResponse{
		ID: item.ID,
		MenuItemPayload: form.MenuItemPayload{
			Name:            item.Name.String(),
			Slug:            item.Slug.String(),
			Description:     item.Description,
			Price:           &price,
			Category:        item.CategoryID,
			Subcategory:     item.SubcategoryID,
			Images:          item.Images.Strings(),
			Tags:            item.Tags.Strings(),
			Allergens:       item.Allergens.Strings(),
			Ingredients:     item.Ingredients.Strings(),
			PreparationTime: item.PreparationTime,
			Calories:        item.Calories,
			Order:           item.Order,
			IsAvailable:     item.IsAvailable,
			IsFeatured:      item.IsFeatured,
			IsVegetarian:    item.IsVegetarian,
			IsSpicy:         item.IsSpicy,
		},
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

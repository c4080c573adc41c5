package public

import (
	"github.com/sngm3741/menu-studio/api/internal/form"
	publicdomain "github.com/sngm3741/menu-studio/api/internal/public/domain"
)

func menuToResponse(menu publicdomain.Menu) menuResponse {
	sf := menu.Storefront
	branches := make([]form.BranchPayload, 0, len(sf.Branches))
	for _, b := range sf.Branches {
		branches = append(branches, form.BranchPayload{Name: b.Name, Address: b.Address, Coordinates: form.Coordinates{Lat: b.Lat, Lng: b.Lng}})
	}
	sections := make([]sectionResponse, 0, len(menu.Sections))
	for _, s := range menu.Sections {
		sections = append(sections, sectionToResponse(s))
	}
	return menuResponse{
		Provider: storefrontResponse{
			ID:           sf.ID,
			BusinessName: sf.BusinessName,
			Slug:         sf.Slug,
			Description:  sf.Description,
			Phone:        sf.Phone,
			Email:        sf.Email,
			Website:      sf.Website,
			Address:      sf.Address,
			Logo:         sf.Logo,
			CoverImage:   sf.CoverImage,
			Cuisines:     nonNil(sf.Cuisines),
			Features:     nonNil(sf.Features),
			Branches:     branches,
			WorkingHours: form.SeedWorkingHours(sf.WorkingHours).Records(),
			Settings:     sf.Settings,
		},
		Categories: sections,
	}
}

func sectionToResponse(s publicdomain.Section) sectionResponse {
	subs := make([]subcategoryResponse, 0, len(s.Category.Subcategories))
	for _, sub := range s.Category.Subcategories {
		subs = append(subs, subcategoryResponse{ID: sub.ID, NameFa: sub.NameFa, NameEn: sub.NameEn})
	}
	items := make([]menuItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, menuItemResponse{
			ID:              it.ID,
			Name:            it.Name,
			Slug:            it.Slug,
			Description:     it.Description,
			Price:           it.Price,
			Category:        it.CategoryID,
			Subcategory:     it.SubcategoryID,
			Images:          it.Images,
			Tags:            it.Tags,
			Allergens:       it.Allergens,
			Ingredients:     it.Ingredients,
			PreparationTime: it.PreparationTime,
			Calories:        it.Calories,
			IsFeatured:      it.IsFeatured,
			IsVegetarian:    it.IsVegetarian,
			IsSpicy:         it.IsSpicy,
		})
	}
	return sectionResponse{
		ID:            s.Category.ID,
		Name:          s.Category.Name,
		NameEn:        s.Category.NameEn,
		Slug:          s.Category.Slug,
		Description:   s.Category.Description,
		Subcategories: subs,
		Items:         items,
	}
}

// filterSections applies the dependent category/subcategory selection to
// the published sections.
func filterSections(sections []sectionResponse, categoryID, subcategoryID string) []sectionResponse {
	if categoryID == "" {
		return sections
	}
	out := make([]sectionResponse, 0, 1)
	for _, s := range sections {
		if s.ID != categoryID {
			continue
		}
		s.Items = form.FilterByCategory(s.Items, categoryID, subcategoryID)
		out = append(out, s)
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

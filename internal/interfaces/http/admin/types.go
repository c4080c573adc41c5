package admin

import (
	"time"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// providerUpdateRequest is a partial provider update. A present
// businessName marks the profile section as submitted; absent sections are
// left as stored.
type providerUpdateRequest struct {
	BusinessName *string                   `json:"businessName"`
	Slug         string                    `json:"slug"`
	Description  string                    `json:"description"`
	Phone        string                    `json:"phone"`
	Email        string                    `json:"email"`
	Website      string                    `json:"website"`
	Address      string                    `json:"address"`
	Logo         string                    `json:"logo"`
	CoverImage   string                    `json:"coverImage"`
	Cuisines     []string                  `json:"cuisines"`
	Features     []string                  `json:"features"`
	Branches     *[]form.BranchPayload     `json:"branches"`
	WorkingHours *[]form.WorkingHourRecord `json:"workingHours"`
	Settings     *form.ProviderSettings    `json:"settings"`
}

func (req providerUpdateRequest) command() adminapp.UpdateProviderCommand {
	cmd := adminapp.UpdateProviderCommand{
		Branches:     req.Branches,
		WorkingHours: req.WorkingHours,
		Settings:     req.Settings,
	}
	if req.BusinessName != nil {
		cmd.Profile = &adminapp.ProviderProfileCommand{
			BusinessName: *req.BusinessName,
			Slug:         req.Slug,
			Description:  req.Description,
			Phone:        req.Phone,
			Email:        req.Email,
			Website:      req.Website,
			Address:      req.Address,
			Logo:         req.Logo,
			CoverImage:   req.CoverImage,
			Cuisines:     req.Cuisines,
			Features:     req.Features,
		}
	}
	return cmd
}

func categoryCommand(p form.CategoryPayload) adminapp.UpsertCategoryCommand {
	subs := make([]admindomain.SubcategoryInput, 0, len(p.Subcategories))
	for _, s := range p.Subcategories {
		subs = append(subs, admindomain.SubcategoryInput{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	return adminapp.UpsertCategoryCommand{
		Name:          p.Name,
		NameEn:        p.NameEn,
		Slug:          p.Slug,
		Description:   p.Description,
		Order:         p.Order,
		IsActive:      p.IsActive,
		IsVisible:     p.IsVisible,
		Subcategories: subs,
	}
}

func menuItemCommand(p form.MenuItemPayload) adminapp.UpsertMenuItemCommand {
	return adminapp.UpsertMenuItemCommand{
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		CategoryID:      p.Category,
		SubcategoryID:   p.Subcategory,
		Images:          p.Images,
		Tags:            p.Tags,
		Allergens:       p.Allergens,
		Ingredients:     p.Ingredients,
		PreparationTime: p.PreparationTime,
		Calories:        p.Calories,
		Order:           p.Order,
		IsAvailable:     p.IsAvailable,
		IsFeatured:      p.IsFeatured,
		IsVegetarian:    p.IsVegetarian,
		IsSpicy:         p.IsSpicy,
	}
}

type providerResponse struct {
	ID string `json:"id"`
	form.ProviderPayload
	Settings  form.ProviderSettings `json:"settings"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type subcategoryResponse struct {
	ID     string `json:"id"`
	NameFa string `json:"name_fa"`
	NameEn string `json:"name_en"`
}

type categoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	NameEn        string                `json:"nameEn"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description"`
	Order         int                   `json:"order"`
	IsActive      bool                  `json:"isActive"`
	IsVisible     bool                  `json:"isVisible"`
	Subcategories []subcategoryResponse `json:"subcategories"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type menuItemResponse struct {
	ID string `json:"id"`
	form.MenuItemPayload
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

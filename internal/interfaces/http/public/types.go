package public

import (
	"github.com/sngm3741/menu-studio/api/internal/form"
)

type menuResponse struct {
	Provider   storefrontResponse `json:"provider"`
	Categories []sectionResponse  `json:"categories"`
}

type storefrontResponse struct {
	ID           string                   `json:"id"`
	BusinessName string                   `json:"businessName"`
	Slug         string                   `json:"slug"`
	Description  string                   `json:"description,omitempty"`
	Phone        string                   `json:"phone,omitempty"`
	Email        string                   `json:"email,omitempty"`
	Website      string                   `json:"website,omitempty"`
	Address      string                   `json:"address,omitempty"`
	Logo         string                   `json:"logo,omitempty"`
	CoverImage   string                   `json:"coverImage,omitempty"`
	Cuisines     []string                 `json:"cuisines"`
	Features     []string                 `json:"features"`
	Branches     []form.BranchPayload     `json:"branches"`
	WorkingHours []form.WorkingHourRecord `json:"workingHours"`
	Settings     form.ProviderSettings    `json:"settings"`
}

type subcategoryResponse struct {
	ID     string `json:"id"`
	NameFa string `json:"name_fa"`
	NameEn string `json:"name_en,omitempty"`
}

type sectionResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	NameEn        string                `json:"nameEn,omitempty"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description,omitempty"`
	Subcategories []subcategoryResponse `json:"subcategories"`
	Items         []menuItemResponse    `json:"items"`
}

type menuItemResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Images          []string `json:"images,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Allergens       []string `json:"allergens,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	PreparationTime *int     `json:"preparationTime,omitempty"`
	Calories        *int     `json:"calories,omitempty"`
	IsFeatured      bool     `json:"isFeatured"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsSpicy         bool     `json:"isSpicy"`
}

func (m menuItemResponse) CategoryID() string    { return m.Category }
func (m menuItemResponse) SubcategoryID() string { return m.Subcategory }

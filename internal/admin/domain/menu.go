package domain

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Category groups menu items on the storefront.
type Category struct {
	ID            string
	ProviderID    string
	Name          Name
	NameEn        string
	Slug          Slug
	Description   string
	Order         int
	IsActive      bool
	IsVisible     bool
	Subcategories []Subcategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Subcategory ids are stable across edits so menu items keep pointing at
// them.
type Subcategory struct {
	ID     string
	NameFa string
	NameEn string
}

// SubcategoryInput is a submitted row; ID is empty for new rows.
type SubcategoryInput struct {
	ID     string
	NameFa string
	NameEn string
}

// NewSubcategories validates rows, keeps known ids and assigns new ones.
// Submission order is kept.
func NewSubcategories(rows []SubcategoryInput, existing []Subcategory) ([]Subcategory, error) {
	known := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		known[s.ID] = struct{}{}
	}
	result := make([]Subcategory, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		nameFa := strings.TrimSpace(row.NameFa)
		if nameFa == "" {
			return nil, invalid("subcategory %d needs a name", i)
		}
		id := strings.TrimSpace(row.ID)
		if _, ok := known[id]; !ok || id == "" {
			id = ulid.Make().String()
		}
		if _, dup := seen[id]; dup {
			id = ulid.Make().String()
		}
		seen[id] = struct{}{}
		result = append(result, Subcategory{ID: id, NameFa: nameFa, NameEn: strings.TrimSpace(row.NameEn)})
	}
	return result, nil
}

// HasSubcategory reports whether id belongs to the category.
func (c Category) HasSubcategory(id string) bool {
	for _, s := range c.Subcategories {
		if s.ID == id {
			return true
		}
	}
	return false
}

// MenuItem is a dish or drink on the menu.
type MenuItem struct {
	ID              string
	ProviderID      string
	Name            Name
	Slug            Slug
	Description     string
	Price           Price
	CategoryID      string
	SubcategoryID   string
	Images          PhotoURLList
	Tags            TagList
	Allergens       TagList
	Ingredients     TagList
	PreparationTime *int
	Calories        *int
	Order           int
	IsAvailable     bool
	IsFeatured      bool
	IsVegetarian    bool
	IsSpicy         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package domain

import (
	"sort"
	"strings"
)

// Category is a stored category as the storefront reads it.
type Category struct {
	ID            string
	Name          string
	NameEn        string
	Slug          string
	Description   string
	Order         int
	IsActive      bool
	IsVisible     bool
	Subcategories []Subcategory
}

type Subcategory struct {
	ID     string
	NameFa string
	NameEn string
}

// MenuItem is a stored menu item as the storefront reads it. Price is nil
// once the business hides prices.
type MenuItem struct {
	ID              string
	CategoryID      string
	SubcategoryID   string
	Name            string
	Slug            string
	Description     string
	Price           *float64
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

// Menu is the published menu of one business.
type Menu struct {
	Storefront Storefront
	Sections   []Section
}

// Section is one category with its available items.
type Section struct {
	Category Category
	Items    []MenuItem
}

// BuildMenu keeps active, visible categories and available items, orders
// both by Order then name, and applies the storefront display settings.
// Categories without items are kept so an empty section can still render.
func BuildMenu(storefront Storefront, categories []Category, items []MenuItem) Menu {
	visible := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.IsActive && c.IsVisible {
			visible = append(visible, c)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return lessByOrder(visible[i].Order, visible[j].Order, visible[i].Name, visible[j].Name)
	})

	grouped := make(map[string][]MenuItem, len(visible))
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		if !storefront.Settings.ShowPrices {
			item.Price = nil
		}
		if !storefront.Settings.ShowImages {
			item.Images = nil
		}
		grouped[item.CategoryID] = append(grouped[item.CategoryID], item)
	}

	sections := make([]Section, 0, len(visible))
	for _, c := range visible {
		list := grouped[c.ID]
		sort.SliceStable(list, func(i, j int) bool {
			return lessByOrder(list[i].Order, list[j].Order, list[i].Name, list[j].Name)
		})
		if list == nil {
			list = []MenuItem{}
		}
		sections = append(sections, Section{Category: c, Items: list})
	}
	return Menu{Storefront: storefront, Sections: sections}
}

func lessByOrder(a, b int, nameA, nameB string) bool {
	if a != b {
		return a < b
	}
	return strings.Compare(nameA, nameB) < 0
}

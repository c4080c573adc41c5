package form

import "errors"

var (
	ErrNoCategorySelected = errors.New("form: no category selected")
	ErrUnknownSubcategory = errors.New("form: subcategory does not belong to the selected category")
)

const (
	PlaceholderSelectCategoryFirst = "select a category first"
	PlaceholderSelectSubcategory   = "select a subcategory"
)

// SubcategoryOption is an entry of the second select.
type SubcategoryOption struct {
	ID     string `json:"id"`
	NameFa string `json:"name_fa"`
	NameEn string `json:"name_en,omitempty"`
}

// CategoryOption is an entry of the first select with its subcategories.
type CategoryOption struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	NameEn        string              `json:"nameEn,omitempty"`
	Subcategories []SubcategoryOption `json:"subcategories,omitempty"`
}

// Cascade is a category select driving a subcategory select. Changing the
// category always clears the subcategory, even when the new category has an
// option with the same name.
type Cascade struct {
	Categories          []CategoryOption
	SelectedCategory    string
	SelectedSubcategory string
}

// NewCascade starts with nothing selected.
func NewCascade(categories []CategoryOption) Cascade {
	return Cascade{Categories: categories}
}

// LoadCascade restores a stored selection. A stored subcategory that no
// longer belongs to the category is dropped.
func LoadCascade(categories []CategoryOption, categoryID, subcategoryID string) Cascade {
	c := Cascade{Categories: categories, SelectedCategory: categoryID}
	if subcategoryID != "" {
		if next, err := c.SetSubcategory(subcategoryID); err == nil {
			c = next
		}
	}
	return c
}

// SetCategory selects a category and resets the subcategory.
func (c Cascade) SetCategory(id string) Cascade {
	c.SelectedCategory = id
	c.SelectedSubcategory = ""
	return c
}

// SetSubcategory selects a subcategory of the current category. An empty id
// clears the selection.
func (c Cascade) SetSubcategory(id string) (Cascade, error) {
	if id == "" {
		c.SelectedSubcategory = ""
		return c, nil
	}
	if c.SelectedCategory == "" {
		return c, ErrNoCategorySelected
	}
	for _, opt := range c.Options() {
		if opt.ID == id {
			c.SelectedSubcategory = id
			return c, nil
		}
	}
	return c, ErrUnknownSubcategory
}

// Options returns the subcategories of the selected category, or an empty
// list when nothing (or an unknown id) is selected.
func (c Cascade) Options() []SubcategoryOption {
	if c.SelectedCategory == "" {
		return []SubcategoryOption{}
	}
	for _, cat := range c.Categories {
		if cat.ID == c.SelectedCategory {
			return append([]SubcategoryOption{}, cat.Subcategories...)
		}
	}
	return []SubcategoryOption{}
}

// Disabled reports whether the subcategory control is inactive.
func (c Cascade) Disabled() bool {
	return c.SelectedCategory == ""
}

// Placeholder returns the hint shown in the subcategory control.
func (c Cascade) Placeholder() string {
	if c.Disabled() {
		return PlaceholderSelectCategoryFirst
	}
	return PlaceholderSelectSubcategory
}

// Filterable is implemented by list rows that carry a category selection.
type Filterable interface {
	CategoryID() string
	SubcategoryID() string
}

// FilterByCategory keeps the items matching the selection. An empty category
// keeps everything; an empty subcategory keeps the whole category.
func FilterByCategory[T Filterable](items []T, categoryID, subcategoryID string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if categoryID != "" && it.CategoryID() != categoryID {
			continue
		}
		if subcategoryID != "" && it.SubcategoryID() != subcategoryID {
			continue
		}
		out = append(out, it)
	}
	return out
}

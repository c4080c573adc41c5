package form

import (
	"math"
	"strconv"
	"strings"
)

// UploadedImage is what the upload widget hands back for each file.
type UploadedImage struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

// ImageURLs flattens upload results to bare URLs, skipping empty ones.
func ImageURLs(images []UploadedImage) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if u := strings.TrimSpace(img.URL); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func firstImageURL(images []UploadedImage) string {
	if urls := ImageURLs(images); len(urls) > 0 {
		return urls[0]
	}
	return ""
}

// ---- categories ----

// SubcategoryRecord is one row of the category form's subcategory list. ID
// is empty for rows added in this session.
type SubcategoryRecord struct {
	ID     string
	NameFa string
	NameEn string
}

var (
	SubcategoryNameFa Lens[SubcategoryRecord, string] = func(s *SubcategoryRecord) *string { return &s.NameFa }
	SubcategoryNameEn Lens[SubcategoryRecord, string] = func(s *SubcategoryRecord) *string { return &s.NameEn }
)

// NewSubcategories returns a subcategory editor.
func NewSubcategories(seed ...SubcategoryRecord) NestedArray[SubcategoryRecord] {
	return NewNestedArray(func() SubcategoryRecord { return SubcategoryRecord{} }, seed...)
}

// CategoryForm is the state of the create/edit category page.
type CategoryForm struct {
	Name          SlugDerivation
	NameEn        string
	Description   string
	Order         string
	IsActive      bool
	IsVisible     bool
	Subcategories NestedArray[SubcategoryRecord]
}

// SubcategoryPayload is a subcategory as the categories API takes it.
type SubcategoryPayload struct {
	ID     string `json:"id,omitempty"`
	NameFa string `json:"name_fa"`
	NameEn string `json:"name_en"`
}

// CategoryPayload is the body of POST/PUT /api/categories.
type CategoryPayload struct {
	Name          string               `json:"name"`
	NameEn        string               `json:"nameEn"`
	Slug          string               `json:"slug"`
	Description   string               `json:"description"`
	Order         int                  `json:"order"`
	IsActive      bool                 `json:"isActive"`
	IsVisible     bool                 `json:"isVisible"`
	Subcategories []SubcategoryPayload `json:"subcategories"`
}

// MapCategory converts the form to the API body. Subcategories keep their
// editing order.
func MapCategory(f CategoryForm) CategoryPayload {
	subs := make([]SubcategoryPayload, 0, f.Subcategories.Len())
	for _, s := range f.Subcategories.Values() {
		subs = append(subs, SubcategoryPayload{
			ID:     strings.TrimSpace(s.ID),
			NameFa: strings.TrimSpace(s.NameFa),
			NameEn: strings.TrimSpace(s.NameEn),
		})
	}
	return CategoryPayload{
		Name:          strings.TrimSpace(f.Name.Name()),
		NameEn:        strings.TrimSpace(f.NameEn),
		Slug:          f.Name.Slug(),
		Description:   strings.TrimSpace(f.Description),
		Order:         intOrZero(f.Order),
		IsActive:      f.IsActive,
		IsVisible:     f.IsVisible,
		Subcategories: subs,
	}
}

// ---- menu items ----

// MenuItemForm is the state of the create/edit menu item page. IsVisible
// only drives the preview card and is not part of the API contract.
type MenuItemForm struct {
	Name            SlugDerivation
	Description     string
	Price           string
	Selection       Cascade
	Images          []UploadedImage
	Tags            TagSet
	Allergens       TagSet
	Ingredients     TagSet
	PreparationTime string
	Calories        string
	Order           string
	IsAvailable     bool
	IsFeatured      bool
	IsVegetarian    bool
	IsSpicy         bool
	IsVisible       bool
}

// MenuItemPayload is the body of POST/PUT /api/menu-items. A nil Price
// means the input did not parse and must fail validation.
type MenuItemPayload struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug,omitempty"`
	Description     string   `json:"description,omitempty"`
	Price           *float64 `json:"price"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Images          []string `json:"images"`
	Tags            []string `json:"tags"`
	Allergens       []string `json:"allergens"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime *int     `json:"preparationTime,omitempty"`
	Calories        *int     `json:"calories,omitempty"`
	Order           int      `json:"order"`
	IsAvailable     bool     `json:"isAvailable"`
	IsFeatured      bool     `json:"isFeatured"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsSpicy         bool     `json:"isSpicy"`
}

// MapMenuItem converts the form to the API body.
func MapMenuItem(f MenuItemForm) MenuItemPayload {
	return MenuItemPayload{
		Name:            strings.TrimSpace(f.Name.Name()),
		Slug:            f.Name.Slug(),
		Description:     strings.TrimSpace(f.Description),
		Price:           ParseFloat(f.Price),
		Category:        f.Selection.SelectedCategory,
		Subcategory:     f.Selection.SelectedSubcategory,
		Images:          ImageURLs(f.Images),
		Tags:            f.Tags.Values(),
		Allergens:       f.Allergens.Values(),
		Ingredients:     f.Ingredients.Values(),
		PreparationTime: ParseInt(f.PreparationTime),
		Calories:        ParseInt(f.Calories),
		Order:           intOrZero(f.Order),
		IsAvailable:     f.IsAvailable,
		IsFeatured:      f.IsFeatured,
		IsVegetarian:    f.IsVegetarian,
		IsSpicy:         f.IsSpicy,
	}
}

// ---- providers ----

// ProviderSettings is the storefront appearance block of a business.
type ProviderSettings struct {
	ThemeColor string `json:"themeColor"`
	Currency   string `json:"currency"`
	Language   string `json:"language"`
	MenuLayout string `json:"menuLayout"`
	ShowPrices bool   `json:"showPrices"`
	ShowImages bool   `json:"showImages"`
}

// DefaultProviderSettings is what a new storefront starts with.
func DefaultProviderSettings() ProviderSettings {
	return ProviderSettings{
		ThemeColor: "#e11d48",
		Currency:   "IRR",
		Language:   "fa",
		MenuLayout: "grid",
		ShowPrices: true,
		ShowImages: true,
	}
}

var (
	SettingsThemeColor Lens[ProviderSettings, string] = func(s *ProviderSettings) *string { return &s.ThemeColor }
	SettingsCurrency   Lens[ProviderSettings, string] = func(s *ProviderSettings) *string { return &s.Currency }
	SettingsLanguage   Lens[ProviderSettings, string] = func(s *ProviderSettings) *string { return &s.Language }
	SettingsMenuLayout Lens[ProviderSettings, string] = func(s *ProviderSettings) *string { return &s.MenuLayout }
	SettingsShowPrices Lens[ProviderSettings, bool]   = func(s *ProviderSettings) *bool { return &s.ShowPrices }
	SettingsShowImages Lens[ProviderSettings, bool]   = func(s *ProviderSettings) *bool { return &s.ShowImages }
)

// ProviderForm is the state of the business profile page.
type ProviderForm struct {
	BusinessName SlugDerivation
	Description  string
	Phone        string
	Email        string
	Website      string
	Address      string
	Logo         []UploadedImage
	CoverImage   []UploadedImage
	Cuisines     TagSet
	Features     TagSet
	Branches     NestedArray[BranchRecord]
	WorkingHours WorkingHours
}

// BranchPayload is the persisted shape of a branch.
type BranchPayload struct {
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// ProviderPayload is the full-profile body of PUT /api/providers/:id.
// Optional contact fields are nil rather than "" so format checks on the
// API side only see real values.
type ProviderPayload struct {
	BusinessName string              `json:"businessName"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Website      *string             `json:"website,omitempty"`
	Address      string              `json:"address,omitempty"`
	Logo         string              `json:"logo,omitempty"`
	CoverImage   string              `json:"coverImage,omitempty"`
	Cuisines     []string            `json:"cuisines"`
	Features     []string            `json:"features"`
	Branches     []BranchPayload     `json:"branches"`
	WorkingHours []WorkingHourRecord `json:"workingHours"`
}

// SettingsPayload is the partial PUT /api/providers/:id body that only
// carries the settings sub-object.
type SettingsPayload struct {
	Settings ProviderSettings `json:"settings"`
}

// MapProvider converts the business profile form to the API body.
func MapProvider(f ProviderForm) ProviderPayload {
	branches := make([]BranchPayload, 0, f.Branches.Len())
	for _, b := range f.Branches.Values() {
		branches = append(branches, BranchPayload{
			Name:        strings.TrimSpace(b.Title),
			Address:     strings.TrimSpace(b.Address),
			Coordinates: b.Coordinates,
		})
	}
	return ProviderPayload{
		BusinessName: strings.TrimSpace(f.BusinessName.Name()),
		Slug:         f.BusinessName.Slug(),
		Description:  strings.TrimSpace(f.Description),
		Phone:        strings.TrimSpace(f.Phone),
		Email:        OptionalString(f.Email),
		Website:      OptionalString(f.Website),
		Address:      strings.TrimSpace(f.Address),
		Logo:         firstImageURL(f.Logo),
		CoverImage:   firstImageURL(f.CoverImage),
		Cuisines:     f.Cuisines.Values(),
		Features:     f.Features.Values(),
		Branches:     branches,
		WorkingHours: f.WorkingHours.Records(),
	}
}

// MapProviderSettings wraps settings for a settings-only update.
func MapProviderSettings(s ProviderSettings) SettingsPayload {
	s.ThemeColor = strings.TrimSpace(s.ThemeColor)
	s.Currency = strings.TrimSpace(s.Currency)
	s.Language = strings.TrimSpace(s.Language)
	s.MenuLayout = strings.TrimSpace(s.MenuLayout)
	return SettingsPayload{Settings: s}
}

// ---- coercion ----

var digitFolder = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4", "۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4", "٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	",", "", "٬", "", "٫", ".",
)

func normalizeNumber(raw string) string {
	return strings.TrimSpace(digitFolder.Replace(raw))
}

// ParseFloat reads a number typed into a text input. Persian and Arabic
// digits and thousands separators are accepted. It returns nil when the
// input does not parse or is not finite.
func ParseFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(normalizeNumber(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseInt is ParseFloat for whole numbers.
func ParseInt(raw string) *int {
	v, err := strconv.Atoi(normalizeNumber(raw))
	if err != nil {
		return nil
	}
	return &v
}

func intOrZero(raw string) int {
	if v := ParseInt(raw); v != nil {
		return *v
	}
	return 0
}

// OptionalString trims s and returns nil when nothing is left.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

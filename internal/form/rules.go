package form

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidateCategoryPayload runs the checks that block a category submit.
func ValidateCategoryPayload(p CategoryPayload) ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == "" {
		errs.Add("name", "category name is required")
	}
	if !IsValidSlug(p.Slug, PersianSlug) {
		errs.Add("slug", "slug may only contain letters, digits and hyphens")
	}
	if p.Order < 0 {
		errs.Add("order", "order cannot be negative")
	}
	for i, s := range p.Subcategories {
		if s.NameFa == "" {
			errs.Add(fmt.Sprintf("subcategories[%d].name_fa", i), "subcategory name is required")
		}
	}
	return errs
}

// ValidateMenuItemPayload runs the checks that block a menu item submit.
func ValidateMenuItemPayload(p MenuItemPayload) ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == "" {
		errs.Add("name", "item name is required")
	}
	if p.Slug != "" && !IsValidSlug(p.Slug, PersianSlug) {
		errs.Add("slug", "slug may only contain letters, digits and hyphens")
	}
	switch {
	case p.Price == nil:
		errs.Add("price", "price must be a number")
	case *p.Price <= 0:
		errs.Add("price", "price must be greater than zero")
	}
	if p.Category == "" {
		errs.Add("category", "category is required")
	}
	if p.PreparationTime != nil && *p.PreparationTime < 0 {
		errs.Add("preparationTime", "preparation time cannot be negative")
	}
	if p.Calories != nil && *p.Calories < 0 {
		errs.Add("calories", "calories cannot be negative")
	}
	return errs
}

// ValidateProviderPayload runs the checks that block a business profile
// submit.
func ValidateProviderPayload(p ProviderPayload) ValidationErrors {
	errs := ValidationErrors{}
	if p.BusinessName == "" {
		errs.Add("businessName", "business name is required")
	}
	if !IsValidSlug(p.Slug, StrictSlug) {
		errs.Add("slug", "slug may only contain a-z, 0-9 and hyphens")
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			errs.Add("email", "email is not valid")
		}
	}
	if p.Website != nil && !isWebURL(*p.Website) {
		errs.Add("website", "website must be an http(s) URL")
	}
	for i, b := range p.Branches {
		if b.Name == "" {
			errs.Add(fmt.Sprintf("branches[%d].title", i), "branch title is required")
		}
		if b.Address == "" {
			errs.Add(fmt.Sprintf("branches[%d].address", i), "branch address is required")
		}
	}
	if len(p.WorkingHours) != len(Weekdays) {
		errs.Add("workingHours", "working hours must list every day of the week")
	} else {
		errs.Merge(SeedWorkingHours(p.WorkingHours).Validate())
	}
	return errs
}

// ValidateSettings checks a settings-only update.
func ValidateSettings(s ProviderSettings) ValidationErrors {
	errs := ValidationErrors{}
	if s.ThemeColor != "" && !isHexColor(s.ThemeColor) {
		errs.Add("settings.themeColor", "theme color must look like #rrggbb")
	}
	if s.Currency == "" {
		errs.Add("settings.currency", "currency is required")
	}
	if s.Language == "" {
		errs.Add("settings.language", "language is required")
	}
	return errs
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isHexColor(v string) bool {
	if len(v) != 7 || v[0] != '#' {
		return false
	}
	return strings.Trim(strings.ToLower(v[1:]), "0123456789abcdef") == ""
}

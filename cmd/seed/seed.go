package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/editor"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

//go:embed sample.json
var sampleData []byte

type seedFile struct {
	Provider   providerSeed   `json:"provider"`
	Categories []categorySeed `json:"categories"`
}

type providerSeed struct {
	BusinessName string       `json:"businessName"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Website      string       `json:"website"`
	Address      string       `json:"address"`
	Cuisines     []string     `json:"cuisines"`
	Features     []string     `json:"features"`
	OpenTime     string       `json:"openTime"`
	CloseTime    string       `json:"closeTime"`
	ClosedDays   []string     `json:"closedDays"`
	Branches     []branchSeed `json:"branches"`
	ThemeColor   string       `json:"themeColor"`
	MenuLayout   string       `json:"menuLayout"`
}

type branchSeed struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type categorySeed struct {
	Name          string            `json:"name"`
	NameEn        string            `json:"nameEn"`
	Slug          string            `json:"slug"`
	Order         int               `json:"order"`
	Subcategories []subcategorySeed `json:"subcategories"`
	Items         []itemSeed        `json:"items"`
}

type subcategorySeed struct {
	Fa string `json:"fa"`
	En string `json:"en"`
}

type itemSeed struct {
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	Subcategory     string   `json:"subcategory"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Allergens       []string `json:"allergens"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime string   `json:"preparationTime"`
	Vegetarian      bool     `json:"vegetarian"`
	Spicy           bool     `json:"spicy"`
	Featured        bool     `json:"featured"`
}

type summary struct {
	Provider   string
	Categories int
	Items      int
}

func parseSeed(raw []byte) (seedFile, error) {
	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return seedFile{}, fmt.Errorf("parse seed file: %w", err)
	}
	if strings.TrimSpace(data.Provider.BusinessName) == "" {
		return seedFile{}, fmt.Errorf("seed file has no provider.businessName")
	}
	return data, nil
}

// seed fills the dashboard forms the way an owner would and submits them,
// so every record passes the same validation as hand-entered data.
func seed(ctx context.Context, client *apiclient.Client, logger *zap.Logger, providerID string, data seedFile) (summary, error) {
	var out summary

	provider, err := seedProvider(ctx, client, logger, providerID, data.Provider)
	if err != nil {
		return out, err
	}
	out.Provider = provider.Slug

	cache := editor.NewCategoryCache()
	if err := cache.Refresh(ctx, client); err != nil {
		return out, fmt.Errorf("load categories: %w", err)
	}
	existing := make(map[string]apiclient.Category)
	for _, c := range cache.List() {
		existing[c.Slug] = c
	}

	for _, cs := range data.Categories {
		var ce *editor.CategoryEditor
		if current, ok := existing[cs.Slug]; ok && cs.Slug != "" {
			ce = editor.EditCategory(client, cache, logger, current)
		} else {
			ce = editor.NewCategoryEditor(client, cache, logger)
		}
		ce.SetName(cs.Name)
		if cs.Slug != "" {
			ce.SetSlug(cs.Slug)
		}
		ce.SetNameEn(cs.NameEn)
		ce.SetOrder(fmt.Sprint(cs.Order))
		ce.SetActive(true)
		ce.SetVisible(true)
		for _, sub := range cs.Subcategories {
			if hasSubcategory(ce.Form(), sub) {
				continue
			}
			if err := ce.AddSubcategory(); err != nil {
				return out, err
			}
			last := ce.Form().Subcategories.Len() - 1
			if err := ce.SetSubcategory(last, form.SubcategoryNameFa, sub.Fa); err != nil {
				return out, err
			}
			if err := ce.SetSubcategory(last, form.SubcategoryNameEn, sub.En); err != nil {
				return out, err
			}
		}
		category, err := ce.Submit(ctx)
		if err != nil {
			return out, fmt.Errorf("category %q: %w (%v)", cs.Name, err, ce.Errors())
		}
		out.Categories++

		for _, is := range cs.Items {
			if err := seedItem(ctx, client, cache, logger, category, is); err != nil {
				return out, err
			}
			out.Items++
		}
	}
	return out, nil
}

func seedProvider(ctx context.Context, client *apiclient.Client, logger *zap.Logger, providerID string, ps providerSeed) (apiclient.Provider, error) {
	e := editor.NewProviderEditor(client, logger, providerID)
	e.SetBusinessName(ps.BusinessName)
	if ps.Slug != "" {
		e.SetSlug(ps.Slug)
	}
	e.SetText(editor.ProviderDescription, ps.Description)
	e.SetText(editor.ProviderPhone, ps.Phone)
	e.SetText(editor.ProviderEmail, ps.Email)
	e.SetText(editor.ProviderWebsite, ps.Website)
	e.SetText(editor.ProviderAddress, ps.Address)
	for _, c := range ps.Cuisines {
		e.AddCuisine(c)
	}
	for _, f := range ps.Features {
		e.AddFeature(f)
	}

	closed := make(map[form.Weekday]bool)
	for _, code := range ps.ClosedDays {
		d, ok := form.ParseWeekday(strings.ToLower(strings.TrimSpace(code)))
		if !ok {
			return apiclient.Provider{}, fmt.Errorf("unknown weekday %q", code)
		}
		closed[d] = true
	}
	for _, d := range form.Weekdays {
		if closed[d] {
			if err := e.ToggleDay(d); err != nil {
				return apiclient.Provider{}, err
			}
			continue
		}
		if ps.OpenTime != "" {
			if err := e.SetOpenTime(d, ps.OpenTime); err != nil {
				return apiclient.Provider{}, err
			}
		}
		if ps.CloseTime != "" {
			if err := e.SetCloseTime(d, ps.CloseTime); err != nil {
				return apiclient.Provider{}, err
			}
		}
	}

	for i, b := range ps.Branches {
		if err := e.AddBranch(); err != nil {
			return apiclient.Provider{}, err
		}
		if err := editor.UpdateBranch(e, i, form.BranchTitle, b.Name); err != nil {
			return apiclient.Provider{}, err
		}
		if err := editor.UpdateBranch(e, i, form.BranchAddress, b.Address); err != nil {
			return apiclient.Provider{}, err
		}
		if err := editor.UpdateBranch(e, i, form.BranchCoordinates, form.Coordinates{Lat: b.Lat, Lng: b.Lng}); err != nil {
			return apiclient.Provider{}, err
		}
	}

	provider, err := e.Submit(ctx)
	if err != nil {
		return provider, fmt.Errorf("provider: %w (%v)", err, e.Errors())
	}

	if ps.ThemeColor == "" && ps.MenuLayout == "" {
		return provider, nil
	}
	if ps.ThemeColor != "" {
		editor.UpdateSetting(e, form.SettingsThemeColor, ps.ThemeColor)
	}
	if ps.MenuLayout != "" {
		editor.UpdateSetting(e, form.SettingsMenuLayout, ps.MenuLayout)
	}
	provider, err = e.SubmitSettings(ctx)
	if err != nil {
		return provider, fmt.Errorf("provider settings: %w (%v)", err, e.Errors())
	}
	return provider, nil
}

func seedItem(ctx context.Context, client *apiclient.Client, cache *editor.CategoryCache, logger *zap.Logger, category apiclient.Category, is itemSeed) error {
	e := editor.NewMenuItemEditor(client, cache, logger)
	e.SetName(is.Name)
	e.SetText(editor.ItemDescription, is.Description)
	e.SetText(editor.ItemPrice, is.Price)
	e.SetText(editor.ItemPreparationTime, is.PreparationTime)
	e.SetFlag(editor.ItemAvailable, true)
	e.SetFlag(editor.ItemVegetarian, is.Vegetarian)
	e.SetFlag(editor.ItemSpicy, is.Spicy)
	e.SetFlag(editor.ItemFeatured, is.Featured)
	e.SetCategory(category.ID)
	if is.Subcategory != "" {
		id, ok := subcategoryID(category, is.Subcategory)
		if !ok {
			return fmt.Errorf("item %q: category %q has no subcategory %q", is.Name, category.Name, is.Subcategory)
		}
		if err := e.SetSubcategory(id); err != nil {
			return err
		}
	}
	for field, values := range map[editor.TagField][]string{
		editor.Tags:        is.Tags,
		editor.Allergens:   is.Allergens,
		editor.Ingredients: is.Ingredients,
	} {
		for _, v := range values {
			e.Stage(field, v)
			e.Commit(field)
		}
	}
	if _, err := e.Submit(ctx); err != nil {
		return fmt.Errorf("item %q: %w (%v)", is.Name, err, e.Errors())
	}
	return nil
}

func hasSubcategory(f form.CategoryForm, sub subcategorySeed) bool {
	for _, s := range f.Subcategories.Values() {
		if s.NameFa == sub.Fa {
			return true
		}
	}
	return false
}

func subcategoryID(c apiclient.Category, name string) (string, bool) {
	for _, s := range c.Subcategories {
		if strings.EqualFold(s.NameEn, name) || s.NameFa == name {
			return s.ID, true
		}
	}
	return "", false
}

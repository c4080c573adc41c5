package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// MenuItemAPI is the part of the API client the menu item form needs.
type MenuItemAPI interface {
	CreateMenuItem(ctx context.Context, payload form.MenuItemPayload) (apiclient.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, payload form.MenuItemPayload) (apiclient.MenuItem, error)
}

// TagField selects one of the chip lists of the menu item form.
type TagField int

const (
	Tags TagField = iota
	Allergens
	Ingredients
)

// Typed accessors for the plain fields of the menu item form.
var (
	ItemDescription     form.Lens[form.MenuItemForm, string] = func(f *form.MenuItemForm) *string { return &f.Description }
	ItemPrice           form.Lens[form.MenuItemForm, string] = func(f *form.MenuItemForm) *string { return &f.Price }
	ItemPreparationTime form.Lens[form.MenuItemForm, string] = func(f *form.MenuItemForm) *string { return &f.PreparationTime }
	ItemCalories        form.Lens[form.MenuItemForm, string] = func(f *form.MenuItemForm) *string { return &f.Calories }
	ItemOrder           form.Lens[form.MenuItemForm, string] = func(f *form.MenuItemForm) *string { return &f.Order }
	ItemAvailable       form.Lens[form.MenuItemForm, bool]   = func(f *form.MenuItemForm) *bool { return &f.IsAvailable }
	ItemFeatured        form.Lens[form.MenuItemForm, bool]   = func(f *form.MenuItemForm) *bool { return &f.IsFeatured }
	ItemVegetarian      form.Lens[form.MenuItemForm, bool]   = func(f *form.MenuItemForm) *bool { return &f.IsVegetarian }
	ItemSpicy           form.Lens[form.MenuItemForm, bool]   = func(f *form.MenuItemForm) *bool { return &f.IsSpicy }
	ItemVisible         form.Lens[form.MenuItemForm, bool]   = func(f *form.MenuItemForm) *bool { return &f.IsVisible }
)

// MenuItemEditor drives the create/edit menu item page.
type MenuItemEditor struct {
	api    MenuItemAPI
	logger *zap.Logger
	guard  SubmitGuard

	mu     sync.Mutex
	id     string
	state  form.MenuItemForm
	staged [3]form.StagedInput
	errors form.ValidationErrors
}

// NewMenuItemEditor opens an empty create form whose category select is
// filled from cache.
func NewMenuItemEditor(api MenuItemAPI, cache *CategoryCache, logger *zap.Logger) *MenuItemEditor {
	var options []form.CategoryOption
	if cache != nil {
		options = cache.Options()
	}
	return &MenuItemEditor{
		api:    api,
		logger: nopIfNil(logger),
		state: form.MenuItemForm{
			Name:        form.NewSlugDerivation(form.PersianSlug),
			Selection:   form.NewCascade(options),
			IsAvailable: true,
			IsVisible:   true,
		},
	}
}

// EditMenuItem opens an edit form seeded from item.
func EditMenuItem(api MenuItemAPI, cache *CategoryCache, logger *zap.Logger, item apiclient.MenuItem) *MenuItemEditor {
	e := NewMenuItemEditor(api, cache, logger)
	e.load(item)
	return e
}

func (e *MenuItemEditor) load(item apiclient.MenuItem) {
	images := make([]form.UploadedImage, 0, len(item.Images))
	for _, u := range item.Images {
		images = append(images, form.UploadedImage{URL: u})
	}
	e.id = item.ID
	e.state = form.MenuItemForm{
		Name:            form.LoadSlugDerivation(form.PersianSlug, item.Name, item.Slug),
		Description:     item.Description,
		Price:           formatFloat(item.Price),
		Selection:       form.LoadCascade(e.state.Selection.Categories, item.Category, item.Subcategory),
		Images:          images,
		Tags:            form.NewTagSet(item.Tags...),
		Allergens:       form.NewTagSet(item.Allergens...),
		Ingredients:     form.NewTagSet(item.Ingredients...),
		PreparationTime: formatInt(item.PreparationTime),
		Calories:        formatInt(item.Calories),
		Order:           strconv.Itoa(item.Order),
		IsAvailable:     item.IsAvailable,
		IsFeatured:      item.IsFeatured,
		IsVegetarian:    item.IsVegetarian,
		IsSpicy:         item.IsSpicy,
		IsVisible:       e.state.IsVisible,
	}
	e.staged = [3]form.StagedInput{}
	e.errors = nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func (e *MenuItemEditor) set(fn func(*form.MenuItemForm)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
}

// Form returns the current snapshot.
func (e *MenuItemEditor) Form() form.MenuItemForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *MenuItemEditor) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

func (e *MenuItemEditor) Errors() form.ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errors
}

func (e *MenuItemEditor) Submitting() bool {
	return e.guard.Busy()
}

func (e *MenuItemEditor) SetName(v string) {
	e.set(func(f *form.MenuItemForm) { f.Name = f.Name.SetSource(v) })
}

func (e *MenuItemEditor) SetSlug(v string) {
	e.set(func(f *form.MenuItemForm) { f.Name = f.Name.SetTarget(v) })
}

// SetText edits one of the free text fields.
func (e *MenuItemEditor) SetText(field form.Lens[form.MenuItemForm, string], v string) {
	e.set(func(f *form.MenuItemForm) { *field(f) = v })
}

// SetFlag edits one of the switches.
func (e *MenuItemEditor) SetFlag(field form.Lens[form.MenuItemForm, bool], v bool) {
	e.set(func(f *form.MenuItemForm) { *field(f) = v })
}

// SetCategory changes the category and clears the subcategory.
func (e *MenuItemEditor) SetCategory(id string) {
	e.set(func(f *form.MenuItemForm) { f.Selection = f.Selection.SetCategory(id) })
}

func (e *MenuItemEditor) SetSubcategory(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, err := e.state.Selection.SetSubcategory(id)
	if err != nil {
		return err
	}
	e.state.Selection = next
	return nil
}

// SubcategoryOptions returns what the second select should list.
func (e *MenuItemEditor) SubcategoryOptions() []form.SubcategoryOption {
	return e.Form().Selection.Options()
}

// AddImage appends an uploaded image.
func (e *MenuItemEditor) AddImage(img form.UploadedImage) {
	e.set(func(f *form.MenuItemForm) { f.Images = append(append([]form.UploadedImage(nil), f.Images...), img) })
}

func (e *MenuItemEditor) RemoveImage(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	images := e.state.Images
	if index < 0 || index >= len(images) {
		return fmt.Errorf("remove image %d of %d: %w", index, len(images), form.ErrIndexOutOfRange)
	}
	next := make([]form.UploadedImage, 0, len(images)-1)
	next = append(next, images[:index]...)
	e.state.Images = append(next, images[index+1:]...)
	return nil
}

func (e *MenuItemEditor) tags(field TagField) *form.TagSet {
	switch field {
	case Allergens:
		return &e.state.Allergens
	case Ingredients:
		return &e.state.Ingredients
	default:
		return &e.state.Tags
	}
}

// Stage updates the text box next to a chip list.
func (e *MenuItemEditor) Stage(field TagField, v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.staged[field].Value = v
}

// Staged returns the text box value of a chip list.
func (e *MenuItemEditor) Staged(field TagField) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staged[field].Value
}

// Commit adds the staged value to the chip list. It reports false for empty
// or duplicate values, which stay in the text box.
func (e *MenuItemEditor) Commit(field TagField) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	set := e.tags(field)
	in, next, ok := e.staged[field].Commit(*set)
	e.staged[field] = in
	*set = next
	return ok
}

func (e *MenuItemEditor) RemoveTag(field TagField, v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	set := e.tags(field)
	*set = set.Remove(v)
}

// Submit validates and saves the menu item.
func (e *MenuItemEditor) Submit(ctx context.Context) (apiclient.MenuItem, error) {
	snapshot := e.Form()
	id := e.ID()

	item, err := submit(ctx, &e.guard, e.logger, "menu item", form.MapMenuItem(snapshot), form.ValidateMenuItemPayload,
		func(ctx context.Context, p form.MenuItemPayload) (apiclient.MenuItem, error) {
			if id == "" {
				return e.api.CreateMenuItem(ctx, p)
			}
			return e.api.UpdateMenuItem(ctx, id, p)
		})

	e.mu.Lock()
	defer e.mu.Unlock()
	var verrs form.ValidationErrors
	if errors.As(err, &verrs) {
		e.errors = verrs
		return item, err
	}
	if err != nil {
		return item, err
	}
	e.load(item)
	e.logger.Info("menu item saved", zap.String("id", item.ID), zap.String("category", item.Category))
	return item, nil
}

package editor

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// CategoryAPI is the part of the API client the category form needs.
type CategoryAPI interface {
	CreateCategory(ctx context.Context, payload form.CategoryPayload) (apiclient.Category, error)
	UpdateCategory(ctx context.Context, id string, payload form.CategoryPayload) (apiclient.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryEditor drives the create/edit category page.
type CategoryEditor struct {
	api    CategoryAPI
	cache  *CategoryCache
	logger *zap.Logger
	guard  SubmitGuard

	mu     sync.Mutex
	id     string
	state  form.CategoryForm
	errors form.ValidationErrors
}

// NewCategoryEditor opens an empty create form.
func NewCategoryEditor(api CategoryAPI, cache *CategoryCache, logger *zap.Logger) *CategoryEditor {
	return &CategoryEditor{
		api:    api,
		cache:  cache,
		logger: nopIfNil(logger),
		state: form.CategoryForm{
			Name:          form.NewSlugDerivation(form.PersianSlug),
			Subcategories: form.NewSubcategories(),
			IsActive:      true,
			IsVisible:     true,
		},
	}
}

// EditCategory opens an edit form seeded from cat.
func EditCategory(api CategoryAPI, cache *CategoryCache, logger *zap.Logger, cat apiclient.Category) *CategoryEditor {
	e := NewCategoryEditor(api, cache, logger)
	e.load(cat)
	return e
}

func (e *CategoryEditor) load(cat apiclient.Category) {
	subs := make([]form.SubcategoryRecord, 0, len(cat.Subcategories))
	for _, s := range cat.Subcategories {
		subs = append(subs, form.SubcategoryRecord{ID: s.ID, NameFa: s.NameFa, NameEn: s.NameEn})
	}
	e.id = cat.ID
	e.state = form.CategoryForm{
		Name:          form.LoadSlugDerivation(form.PersianSlug, cat.Name, cat.Slug),
		NameEn:        cat.NameEn,
		Description:   cat.Description,
		Order:         strconv.Itoa(cat.Order),
		IsActive:      cat.IsActive,
		IsVisible:     cat.IsVisible,
		Subcategories: form.NewSubcategories(subs...),
	}
	e.errors = nil
}

func (e *CategoryEditor) apply(fn func(*form.CategoryForm) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.state
	if err := fn(&next); err != nil {
		return err
	}
	e.state = next
	return nil
}

func (e *CategoryEditor) set(fn func(*form.CategoryForm)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
}

// Form returns the current snapshot.
func (e *CategoryEditor) Form() form.CategoryForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ID is empty until the category has been saved.
func (e *CategoryEditor) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Errors returns the messages of the last blocked submit.
func (e *CategoryEditor) Errors() form.ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errors
}

// Submitting reports whether the submit button should be disabled.
func (e *CategoryEditor) Submitting() bool {
	return e.guard.Busy()
}

func (e *CategoryEditor) SetName(v string) {
	e.set(func(f *form.CategoryForm) { f.Name = f.Name.SetSource(v) })
}

func (e *CategoryEditor) SetSlug(v string) {
	e.set(func(f *form.CategoryForm) { f.Name = f.Name.SetTarget(v) })
}

func (e *CategoryEditor) SetNameEn(v string) {
	e.set(func(f *form.CategoryForm) { f.NameEn = v })
}

func (e *CategoryEditor) SetDescription(v string) {
	e.set(func(f *form.CategoryForm) { f.Description = v })
}

func (e *CategoryEditor) SetOrder(v string) {
	e.set(func(f *form.CategoryForm) { f.Order = v })
}

func (e *CategoryEditor) SetActive(v bool) {
	e.set(func(f *form.CategoryForm) { f.IsActive = v })
}

func (e *CategoryEditor) SetVisible(v bool) {
	e.set(func(f *form.CategoryForm) { f.IsVisible = v })
}

// AddSubcategory appends an empty subcategory row.
func (e *CategoryEditor) AddSubcategory() error {
	return e.apply(func(f *form.CategoryForm) error {
		next, err := f.Subcategories.Append()
		f.Subcategories = next
		return err
	})
}

func (e *CategoryEditor) RemoveSubcategory(index int) error {
	return e.apply(func(f *form.CategoryForm) error {
		next, err := f.Subcategories.Remove(index)
		f.Subcategories = next
		return err
	})
}

// SetSubcategory edits one field of a subcategory row.
func (e *CategoryEditor) SetSubcategory(index int, field form.Lens[form.SubcategoryRecord, string], v string) error {
	return e.apply(func(f *form.CategoryForm) error {
		next, err := form.UpdateAt(f.Subcategories, index, field, v)
		f.Subcategories = next
		return err
	})
}

// Submit validates, saves and refreshes the local category cache. The form
// keeps its values when the save fails.
func (e *CategoryEditor) Submit(ctx context.Context) (apiclient.Category, error) {
	snapshot := e.Form()
	id := e.ID()

	cat, err := submit(ctx, &e.guard, e.logger, "category", form.MapCategory(snapshot), form.ValidateCategoryPayload,
		func(ctx context.Context, p form.CategoryPayload) (apiclient.Category, error) {
			if id == "" {
				return e.api.CreateCategory(ctx, p)
			}
			return e.api.UpdateCategory(ctx, id, p)
		})

	e.mu.Lock()
	defer e.mu.Unlock()
	var verrs form.ValidationErrors
	if errors.As(err, &verrs) {
		e.errors = verrs
		return cat, err
	}
	if err != nil {
		return cat, err
	}
	e.errors = nil
	if e.cache != nil {
		e.cache.Put(cat)
	}
	e.load(cat)
	e.logger.Info("category saved", zap.String("id", cat.ID), zap.String("slug", cat.Slug))
	return cat, nil
}

// Delete removes a saved category.
func (e *CategoryEditor) Delete(ctx context.Context) error {
	id := e.ID()
	if id == "" {
		return errors.New("editor: category has not been saved")
	}
	return e.guard.Run(func() error {
		if err := e.api.DeleteCategory(ctx, id); err != nil {
			return err
		}
		if e.cache != nil {
			e.cache.Remove(id)
		}
		return nil
	})
}

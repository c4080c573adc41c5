package editor

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

// ProviderAPI is the part of the API client the business profile needs.
type ProviderAPI interface {
	UpdateProvider(ctx context.Context, id string, payload form.ProviderPayload) (apiclient.Provider, error)
	UpdateProviderSettings(ctx context.Context, id string, payload form.SettingsPayload) (apiclient.Provider, error)
}

var (
	ProviderDescription form.Lens[form.ProviderForm, string] = func(f *form.ProviderForm) *string { return &f.Description }
	ProviderPhone       form.Lens[form.ProviderForm, string] = func(f *form.ProviderForm) *string { return &f.Phone }
	ProviderEmail       form.Lens[form.ProviderForm, string] = func(f *form.ProviderForm) *string { return &f.Email }
	ProviderWebsite     form.Lens[form.ProviderForm, string] = func(f *form.ProviderForm) *string { return &f.Website }
	ProviderAddress     form.Lens[form.ProviderForm, string] = func(f *form.ProviderForm) *string { return &f.Address }
)

// ProviderEditor drives the business profile and storefront settings pages
// of one tenant.
type ProviderEditor struct {
	api    ProviderAPI
	logger *zap.Logger
	guard  SubmitGuard

	mu       sync.Mutex
	id       string
	state    form.ProviderForm
	settings form.ProviderSettings
	errors   form.ValidationErrors
}

// NewProviderEditor opens an empty profile for a tenant that has not saved
// one yet.
func NewProviderEditor(api ProviderAPI, logger *zap.Logger, providerID string) *ProviderEditor {
	return &ProviderEditor{
		api:    api,
		logger: nopIfNil(logger),
		id:     providerID,
		state: form.ProviderForm{
			BusinessName: form.NewSlugDerivation(form.StrictSlug),
			Branches:     form.NewBranches(),
			WorkingHours: form.SeedWorkingHours(nil),
		},
		settings: form.DefaultProviderSettings(),
	}
}

// EditProvider opens the profile seeded from p.
func EditProvider(api ProviderAPI, logger *zap.Logger, p apiclient.Provider) *ProviderEditor {
	e := NewProviderEditor(api, logger, p.ID)
	e.load(p)
	return e
}

func (e *ProviderEditor) load(p apiclient.Provider) {
	branches := make([]form.BranchRecord, 0, len(p.Branches))
	for _, b := range p.Branches {
		branches = append(branches, form.BranchRecord{Title: b.Name, Address: b.Address, Coordinates: b.Coordinates})
	}
	e.state = form.ProviderForm{
		BusinessName: form.LoadSlugDerivation(form.StrictSlug, p.BusinessName, p.Slug),
		Description:  p.Description,
		Phone:        p.Phone,
		Email:        deref(p.Email),
		Website:      deref(p.Website),
		Address:      p.Address,
		Logo:         singleImage(p.Logo),
		CoverImage:   singleImage(p.CoverImage),
		Cuisines:     form.NewTagSet(p.Cuisines...),
		Features:     form.NewTagSet(p.Features...),
		Branches:     form.NewBranches(branches...),
		WorkingHours: form.SeedWorkingHours(p.WorkingHours),
	}
	if p.Settings != (form.ProviderSettings{}) {
		e.settings = p.Settings
	}
	e.errors = nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func singleImage(url string) []form.UploadedImage {
	if url == "" {
		return nil
	}
	return []form.UploadedImage{{URL: url}}
}

func (e *ProviderEditor) set(fn func(*form.ProviderForm)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
}

func (e *ProviderEditor) apply(fn func(*form.ProviderForm) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.state
	if err := fn(&next); err != nil {
		return err
	}
	e.state = next
	return nil
}

// Form returns the current profile snapshot.
func (e *ProviderEditor) Form() form.ProviderForm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Settings returns the current settings snapshot.
func (e *ProviderEditor) Settings() form.ProviderSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

func (e *ProviderEditor) Errors() form.ValidationErrors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errors
}

func (e *ProviderEditor) Submitting() bool {
	return e.guard.Busy()
}

func (e *ProviderEditor) SetBusinessName(v string) {
	e.set(func(f *form.ProviderForm) { f.BusinessName = f.BusinessName.SetSource(v) })
}

func (e *ProviderEditor) SetSlug(v string) {
	e.set(func(f *form.ProviderForm) { f.BusinessName = f.BusinessName.SetTarget(v) })
}

func (e *ProviderEditor) SetText(field form.Lens[form.ProviderForm, string], v string) {
	e.set(func(f *form.ProviderForm) { *field(f) = v })
}

func (e *ProviderEditor) SetLogo(img form.UploadedImage) {
	e.set(func(f *form.ProviderForm) { f.Logo = []form.UploadedImage{img} })
}

func (e *ProviderEditor) SetCoverImage(img form.UploadedImage) {
	e.set(func(f *form.ProviderForm) { f.CoverImage = []form.UploadedImage{img} })
}

// AddCuisine reports false for empty or duplicate values.
func (e *ProviderEditor) AddCuisine(v string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, ok := e.state.Cuisines.Add(v)
	e.state.Cuisines = next
	return ok
}

func (e *ProviderEditor) RemoveCuisine(v string) {
	e.set(func(f *form.ProviderForm) { f.Cuisines = f.Cuisines.Remove(v) })
}

// AddFeature reports false for empty or duplicate values.
func (e *ProviderEditor) AddFeature(v string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	next, ok := e.state.Features.Add(v)
	e.state.Features = next
	return ok
}

func (e *ProviderEditor) RemoveFeature(v string) {
	e.set(func(f *form.ProviderForm) { f.Features = f.Features.Remove(v) })
}

// AddBranch appends a branch with an empty title and a 0,0 pin.
func (e *ProviderEditor) AddBranch() error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := f.Branches.Append()
		f.Branches = next
		return err
	})
}

func (e *ProviderEditor) RemoveBranch(index int) error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := f.Branches.Remove(index)
		f.Branches = next
		return err
	})
}

// UpdateBranch sets one field of a branch.
func UpdateBranch[V any](e *ProviderEditor, index int, field form.Lens[form.BranchRecord, V], v V) error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := form.UpdateAt(f.Branches, index, field, v)
		f.Branches = next
		return err
	})
}

func (e *ProviderEditor) ToggleDay(d form.Weekday) error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := f.WorkingHours.Toggle(d)
		f.WorkingHours = next
		return err
	})
}

func (e *ProviderEditor) SetOpenTime(d form.Weekday, hhmm string) error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := f.WorkingHours.SetOpenTime(d, hhmm)
		f.WorkingHours = next
		return err
	})
}

func (e *ProviderEditor) SetCloseTime(d form.Weekday, hhmm string) error {
	return e.apply(func(f *form.ProviderForm) error {
		next, err := f.WorkingHours.SetCloseTime(d, hhmm)
		f.WorkingHours = next
		return err
	})
}

// UpdateSetting sets one storefront setting. The lens fixes the value type
// to the setting's own type.
func UpdateSetting[V any](e *ProviderEditor, field form.Lens[form.ProviderSettings, V], v V) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings = form.Set(e.settings, field, v)
}

// Submit saves the profile. The first save for a tenant creates the
// provider record.
func (e *ProviderEditor) Submit(ctx context.Context) (apiclient.Provider, error) {
	if e.id == "" {
		return apiclient.Provider{}, errors.New("editor: provider id is required")
	}
	snapshot := e.Form()
	p, err := submit(ctx, &e.guard, e.logger, "business profile", form.MapProvider(snapshot), form.ValidateProviderPayload,
		func(ctx context.Context, payload form.ProviderPayload) (apiclient.Provider, error) {
			return e.api.UpdateProvider(ctx, e.id, payload)
		})
	return p, e.settle(p, err, e.load)
}

// SubmitSettings saves only the settings sub-object.
func (e *ProviderEditor) SubmitSettings(ctx context.Context) (apiclient.Provider, error) {
	if e.id == "" {
		return apiclient.Provider{}, errors.New("editor: provider id is required")
	}
	payload := form.MapProviderSettings(e.Settings())
	p, err := submit(ctx, &e.guard, e.logger, "settings", payload,
		func(p form.SettingsPayload) form.ValidationErrors { return form.ValidateSettings(p.Settings) },
		func(ctx context.Context, payload form.SettingsPayload) (apiclient.Provider, error) {
			return e.api.UpdateProviderSettings(ctx, e.id, payload)
		})
	return p, e.settle(p, err, func(p apiclient.Provider) {
		if p.Settings != (form.ProviderSettings{}) {
			e.settings = p.Settings
		}
	})
}

// settle records the outcome of a submit. accept runs under the lock and
// only on success.
func (e *ProviderEditor) settle(p apiclient.Provider, err error, accept func(apiclient.Provider)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var verrs form.ValidationErrors
	if errors.As(err, &verrs) {
		e.errors = verrs
		return err
	}
	if err != nil {
		return err
	}
	e.errors = nil
	accept(p)
	e.logger.Info("business profile saved", zap.String("id", p.ID), zap.String("slug", p.Slug))
	return nil
}

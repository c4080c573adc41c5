package editor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/menu-studio/api/internal/apiclient"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

func TestProviderEditorProfile(t *testing.T) {
	api := &fakeAPI{}
	e := NewProviderEditor(api, nil, "p1")

	e.SetBusinessName("Roma Pizza")
	e.SetText(ProviderPhone, "021-5555")
	assert.True(t, e.AddCuisine("Italian"))
	assert.False(t, e.AddCuisine("Italian"))
	require.NoError(t, e.ToggleDay(form.Friday))
	require.NoError(t, e.SetOpenTime(form.Saturday, "11:00"))

	require.NoError(t, e.AddBranch())
	require.NoError(t, UpdateBranch(e, 0, form.BranchTitle, "Vanak"))
	require.NoError(t, UpdateBranch(e, 0, form.BranchAddress, "Vanak Sq."))
	require.NoError(t, UpdateBranch(e, 0, form.BranchCoordinates, form.Coordinates{Lat: 35.75, Lng: 51.41}))
	assert.ErrorIs(t, UpdateBranch(e, 3, form.BranchTitle, "x"), form.ErrIndexOutOfRange)

	p, err := e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	require.Len(t, api.profiles, 1)
	sent := api.profiles[0]
	assert.Equal(t, "roma-pizza", sent.Slug)
	assert.Nil(t, sent.Email)
	assert.Len(t, sent.WorkingHours, 7)
	assert.False(t, sent.WorkingHours[6].IsOpen)
	assert.Equal(t, "11:00", sent.WorkingHours[0].OpenTime)
	assert.Equal(t, []form.BranchPayload{{Name: "Vanak", Address: "Vanak Sq.", Coordinates: form.Coordinates{Lat: 35.75, Lng: 51.41}}}, sent.Branches)

	raw, err := json.Marshal(sent)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"email"`)
	assert.NotContains(t, string(raw), `"website"`)
}

func TestProviderEditorRejectsPersianSlug(t *testing.T) {
	api := &fakeAPI{}
	e := NewProviderEditor(api, nil, "p1")
	e.SetBusinessName("رستوران رم")

	assert.Empty(t, e.Form().BusinessName.Slug())
	_, err := e.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, e.Errors(), "slug")
	assert.Empty(t, api.profiles)

	e.SetSlug("rome")
	_, err = e.Submit(context.Background())
	require.NoError(t, err)
}

func TestProviderEditorSettingsOnly(t *testing.T) {
	api := &fakeAPI{}
	e := EditProvider(api, nil, apiclient.Provider{
		ID:              "p1",
		ProviderPayload: form.ProviderPayload{BusinessName: "Roma", Slug: "roma"},
	})
	e.SetText(ProviderDescription, "unsaved description")

	UpdateSetting(e, form.SettingsShowPrices, false)
	UpdateSetting(e, form.SettingsThemeColor, "#0f766e")

	_, err := e.SubmitSettings(context.Background())
	require.NoError(t, err)

	require.Len(t, api.settings, 1)
	assert.Empty(t, api.profiles)
	assert.False(t, api.settings[0].Settings.ShowPrices)
	assert.Equal(t, "#0f766e", e.Settings().ThemeColor)
	assert.Equal(t, "unsaved description", e.Form().Description)

	UpdateSetting(e, form.SettingsThemeColor, "teal")
	_, err = e.SubmitSettings(context.Background())
	require.Error(t, err)
	assert.Contains(t, e.Errors(), "settings.themeColor")
}

func TestProviderEditorNeedsID(t *testing.T) {
	e := NewProviderEditor(&fakeAPI{}, nil, "")
	_, err := e.Submit(context.Background())
	assert.Error(t, err)
}

func TestEditProviderSeedsWeek(t *testing.T) {
	email := "owner@roma.ir"
	e := EditProvider(&fakeAPI{}, nil, apiclient.Provider{
		ID: "p1",
		ProviderPayload: form.ProviderPayload{
			BusinessName: "Roma", Slug: "roma", Email: &email,
			WorkingHours: []form.WorkingHourRecord{{Day: form.Friday, IsOpen: false}},
			Branches:     []form.BranchPayload{{Name: "Vanak", Address: "x"}},
		},
	})
	f := e.Form()
	assert.Equal(t, "owner@roma.ir", f.Email)
	assert.Len(t, f.WorkingHours.Records(), 7)
	fri, _ := f.WorkingHours.Day(form.Friday)
	assert.False(t, fri.IsOpen)
	assert.Equal(t, "Vanak", f.Branches.Values()[0].Title)
	assert.Equal(t, form.DefaultProviderSettings(), e.Settings())
}

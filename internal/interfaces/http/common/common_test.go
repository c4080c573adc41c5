package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
	publicdomain "github.com/sngm3741/menu-studio/api/internal/public/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name", admindomain.ErrInvalid), http.StatusBadRequest},
		{admindomain.ErrForbidden, http.StatusForbidden},
		{admindomain.ErrNotFound, http.StatusNotFound},
		{publicdomain.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: slug", admindomain.ErrConflict), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusOf(tc.err), tc.err.Error())
	}
}

func TestWriteServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServiceError(zaptest.NewLogger(t), rec, "save failed", errors.New("mongo: socket closed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.OK)
	assert.Equal(t, "save failed", env.Error)
}

func TestWriteData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(nil, rec, http.StatusCreated, map[string]string{"id": "c1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true,"data":{"id":"c1"}}`, rec.Body.String())
}

func TestValidateBodyMenuItem(t *testing.T) {
	price := 250000.0
	valid, err := json.Marshal(form.MenuItemPayload{Name: "Margherita", Price: &price, Category: "pizza"})
	require.NoError(t, err)
	assert.NoError(t, ValidateBody(MenuItemSchema, valid))

	invalid, err := json.Marshal(form.MenuItemPayload{Name: "Margherita", Category: "pizza"})
	require.NoError(t, err)
	err = ValidateBody(MenuItemSchema, invalid)
	assert.ErrorIs(t, err, admindomain.ErrInvalid)
	assert.Contains(t, err.Error(), "price")

	assert.ErrorIs(t, ValidateBody(MenuItemSchema, []byte(`{`)), admindomain.ErrInvalid)
}

func TestValidateBodyCategoryAndProvider(t *testing.T) {
	assert.NoError(t, ValidateBody(CategorySchema, []byte(`{"name":"پیش غذا","subcategories":[{"name_fa":"سالاد","name_en":""}]}`)))
	assert.Error(t, ValidateBody(CategorySchema, []byte(`{"name":"x","subcategories":[{"name_en":"Salad"}]}`)))
	assert.Error(t, ValidateBody(CategorySchema, []byte(`{"name":"x","order":-1}`)))

	settings, err := json.Marshal(form.MapProviderSettings(form.DefaultProviderSettings()))
	require.NoError(t, err)
	assert.NoError(t, ValidateBody(ProviderSchema, settings))
	assert.Error(t, ValidateBody(ProviderSchema, []byte(`{}`)))
	assert.Error(t, ValidateBody(ProviderSchema, []byte(`{"workingHours":[{"day":"someday","isOpen":true}]}`)))
}

func TestDecodeBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Pizza","order":2}`))
	var p form.CategoryPayload
	require.NoError(t, DecodeBody(req, CategorySchema, &p))
	assert.Equal(t, "Pizza", p.Name)
	assert.Equal(t, 2, p.Order)

	big := bytes.Repeat([]byte("a"), MaxRequestBody+10)
	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(big))
	assert.ErrorIs(t, DecodeBody(req, CategorySchema, &p), admindomain.ErrInvalid)
}

func TestUserContext(t *testing.T) {
	_, ok := UserFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)

	ctx := ContextWithUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), AuthenticatedUser{ID: "u1", ProviderID: "p1"})
	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "p1", user.ProviderID)
}

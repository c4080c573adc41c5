package admin

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

func (h *Handler) menuItemListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.MenuItemFilter{
			CategoryID:    strings.TrimSpace(query.Get("category")),
			SubcategoryID: strings.TrimSpace(query.Get("subcategory")),
			Keyword:       strings.TrimSpace(query.Get("q")),
		}
		items, err := h.menuItems.List(ctx, tenantID, filter)
		if err != nil {
			common.WriteServiceError(h.logger, w, "failed to list menu items", err)
			return
		}
		out := make([]menuItemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, menuItemToResponse(item))
		}
		common.WriteData(h.logger, w, http.StatusOK, out)
	}
}

func (h *Handler) menuItemDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		item, err := h.menuItems.Detail(ctx, tenantID, id)
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("menuItemId", id)), w, "failed to load menu item", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, menuItemToResponse(*item))
	}
}

func (h *Handler) menuItemCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		var req form.MenuItemPayload
		if err := common.DecodeBody(r, common.MenuItemSchema, &req); err != nil {
			common.WriteServiceError(h.logger, w, "invalid request", err)
			return
		}
		item, err := h.menuItems.Create(ctx, tenantID, menuItemCommand(req))
		if err != nil {
			common.WriteServiceError(h.logger, w, "failed to create menu item", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusCreated, menuItemToResponse(*item))
	}
}

func (h *Handler) menuItemUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		var req form.MenuItemPayload
		if err := common.DecodeBody(r, common.MenuItemSchema, &req); err != nil {
			common.WriteServiceError(h.logger, w, "invalid request", err)
			return
		}
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		item, err := h.menuItems.Update(ctx, tenantID, id, menuItemCommand(req))
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("menuItemId", id)), w, "failed to update menu item", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, menuItemToResponse(*item))
	}
}

func (h *Handler) menuItemDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.menuItems.Delete(ctx, tenantID, id); err != nil {
			common.WriteServiceError(h.logger.With(zap.String("menuItemId", id)), w, "failed to delete menu item", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
	}
}

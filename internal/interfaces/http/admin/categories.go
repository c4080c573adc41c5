package admin

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

func (h *Handler) categoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		categories, err := h.categories.List(ctx, tenantID)
		if err != nil {
			common.WriteServiceError(h.logger, w, "failed to list categories", err)
			return
		}
		items := make([]categoryResponse, 0, len(categories))
		for _, c := range categories {
			items = append(items, categoryToResponse(c))
		}
		common.WriteData(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) categoryDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		category, err := h.categories.Detail(ctx, tenantID, id)
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("categoryId", id)), w, "failed to load category", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, categoryToResponse(*category))
	}
}

func (h *Handler) categoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		var req form.CategoryPayload
		if err := common.DecodeBody(r, common.CategorySchema, &req); err != nil {
			common.WriteServiceError(h.logger, w, "invalid request", err)
			return
		}
		category, err := h.categories.Create(ctx, tenantID, categoryCommand(req))
		if err != nil {
			common.WriteServiceError(h.logger, w, "failed to create category", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusCreated, categoryToResponse(*category))
	}
}

func (h *Handler) categoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		var req form.CategoryPayload
		if err := common.DecodeBody(r, common.CategorySchema, &req); err != nil {
			common.WriteServiceError(h.logger, w, "invalid request", err)
			return
		}
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		category, err := h.categories.Update(ctx, tenantID, id, categoryCommand(req))
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("categoryId", id)), w, "failed to update category", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, categoryToResponse(*category))
	}
}

func (h *Handler) categoryDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if err := h.categories.Delete(ctx, tenantID, id); err != nil {
			common.WriteServiceError(h.logger.With(zap.String("categoryId", id)), w, "failed to delete category", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
	}
}

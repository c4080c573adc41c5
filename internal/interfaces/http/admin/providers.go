package admin

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

func (h *Handler) providerDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		provider, err := h.providers.Detail(ctx, tenantID, id)
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("providerId", id)), w, "failed to load provider", err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, providerToResponse(*provider))
	}
}

// providerUpdateHandler accepts the full profile, a settings-only body or
// any mix of sections.
func (h *Handler) providerUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel, tenantID, ok := h.request(w, r)
		if !ok {
			return
		}
		defer cancel()

		var req providerUpdateRequest
		if err := common.DecodeBody(r, common.ProviderSchema, &req); err != nil {
			common.WriteServiceError(h.logger, w, "invalid request", err)
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		provider, err := h.providers.Update(ctx, tenantID, id, req.command())
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("providerId", id)), w, "failed to save provider", err)
			return
		}
		h.logger.Info("provider saved", zap.String("providerId", id), zap.Bool("profile", req.BusinessName != nil), zap.Bool("settings", req.Settings != nil))
		common.WriteData(h.logger, w, http.StatusOK, providerToResponse(*provider))
	}
}

package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

// menuHandler serves the published menu. ?category= keeps one section and
// ?subcategory= narrows the items inside it.
func (h *Handler) menuHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		menu, err := h.menus.Menu(ctx, slug)
		if err != nil {
			common.WriteServiceError(h.logger.With(zap.String("slug", slug)), w, "failed to load menu", err)
			return
		}

		query := r.URL.Query()
		resp := menuToResponse(*menu)
		resp.Categories = filterSections(resp.Categories, strings.TrimSpace(query.Get("category")), strings.TrimSpace(query.Get("subcategory")))
		w.Header().Set("Cache-Control", "public, max-age=60")
		common.WriteData(h.logger, w, http.StatusOK, resp)
	}
}

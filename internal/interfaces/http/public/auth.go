package public

import (
	"net/http"

	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to read the signed-in user")
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}

package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	"github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
)

// Handler wires dashboard HTTP endpoints to application services.
type Handler struct {
	logger     *zap.Logger
	providers  adminapp.ProviderService
	categories adminapp.CategoryService
	menuItems  adminapp.MenuItemService
	timeout    time.Duration
}

// Config provides dependencies for Handler.
type Config struct {
	Logger          *zap.Logger
	ProviderService adminapp.ProviderService
	CategoryService adminapp.CategoryService
	MenuItemService adminapp.MenuItemService
	RequestTimeout  time.Duration
}

// NewHandler constructs a dashboard HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{
		logger:     logger,
		providers:  cfg.ProviderService,
		categories: cfg.CategoryService,
		menuItems:  cfg.MenuItemService,
		timeout:    timeout,
	}
}

// Register mounts dashboard routes onto router. The router must already
// carry the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/providers/{id}", h.providerDetailHandler())
	r.Put("/providers/{id}", h.providerUpdateHandler())

	r.Get("/categories", h.categoryListHandler())
	r.Post("/categories", h.categoryCreateHandler())
	r.Get("/categories/{id}", h.categoryDetailHandler())
	r.Put("/categories/{id}", h.categoryUpdateHandler())
	r.Delete("/categories/{id}", h.categoryDeleteHandler())

	r.Get("/menu-items", h.menuItemListHandler())
	r.Post("/menu-items", h.menuItemCreateHandler())
	r.Get("/menu-items/{id}", h.menuItemDetailHandler())
	r.Put("/menu-items/{id}", h.menuItemUpdateHandler())
	r.Delete("/menu-items/{id}", h.menuItemDeleteHandler())
}

// request returns the timeout context and the caller's tenant. It writes a
// 401 and reports false when the middleware left no user behind.
func (h *Handler) request(w http.ResponseWriter, r *http.Request) (context.Context, context.CancelFunc, string, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok {
		common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
		return nil, nil, "", false
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	return ctx, cancel, user.ProviderID, true
}

package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	publicapp "github.com/sngm3741/menu-studio/api/internal/public/application"
)

// Handler wires storefront HTTP endpoints to application services.
type Handler struct {
	logger  *zap.Logger
	menus   publicapp.MenuQueryService
	timeout time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger         *zap.Logger
	MenuQueries    publicapp.MenuQueryService
	RequestTimeout time.Duration
}

// NewHandler constructs a storefront HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{logger: logger, menus: cfg.MenuQueries, timeout: timeout}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/public/menus/{slug}", h.menuHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	adminapp "github.com/sngm3741/menu-studio/api/internal/admin/application"
	"github.com/sngm3741/menu-studio/api/internal/config"
	"github.com/sngm3741/menu-studio/api/internal/infrastructure/cache"
	"github.com/sngm3741/menu-studio/api/internal/infrastructure/memory"
	mongodoc "github.com/sngm3741/menu-studio/api/internal/infrastructure/mongo"
	adminhttp "github.com/sngm3741/menu-studio/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/menu-studio/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/menu-studio/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/menu-studio/api/internal/public/application"
)

// Server owns the HTTP lifecycle and wires repositories, services and
// handlers together.
type Server struct {
	logger         *zap.Logger
	client         *mongo.Client
	redis          *redis.Client
	location       *time.Location
	jwtConfigs     []config.JWTConfig
	jwtAudience    string
	addr           string
	allowedOrigins []string
	requestTimeout time.Duration

	providerService adminapp.ProviderService
	categoryService adminapp.CategoryService
	menuItemService adminapp.MenuItemService
	menuQueries     publicapp.MenuQueryService

	registry *prometheus.Registry
	metrics  *httpMetrics
}

// Deps carries the optional external clients. A nil Mongo client runs the
// API on the in-process store. A nil Redis client disables the menu cache.
type Deps struct {
	Logger *zap.Logger
	Mongo  *mongo.Client
	Redis  *redis.Client
}

// New builds a Server from cfg. With a Mongo client it also makes sure the
// indexes exist.
func New(ctx context.Context, cfg config.Config, deps Deps) (*Server, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
		logger.Warn("unknown timezone, using UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	srv := &Server{
		logger:         logger,
		client:         deps.Mongo,
		redis:          deps.Redis,
		location:       loc,
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		requestTimeout: cfg.RequestTimeout,
		registry:       registry,
		metrics:        newHTTPMetrics(registry),
	}

	var (
		adminCache adminapp.MenuCache
		menuCache  publicapp.MenuCache
	)
	if deps.Redis != nil {
		c := cache.NewMenuCache(deps.Redis, cfg.MenuCacheTTL)
		adminCache, menuCache = c, c
	}

	var (
		providers  adminapp.ProviderRepository
		categories adminapp.CategoryRepository
		menuItems  adminapp.MenuItemRepository
		menus      publicapp.MenuRepository
	)
	if deps.Mongo != nil {
		db := deps.Mongo.Database(cfg.MongoDatabase)
		indexCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		if err := mongodoc.EnsureIndexes(indexCtx, db, mongodoc.Collections{
			Providers:  cfg.ProviderCollection,
			Categories: cfg.CategoryCollection,
			MenuItems:  cfg.MenuItemCollection,
		}); err != nil {
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		providers = mongodoc.NewProviderRepository(db, cfg.ProviderCollection)
		categories = mongodoc.NewCategoryRepository(db, cfg.CategoryCollection)
		menuItems = mongodoc.NewMenuItemRepository(db, cfg.MenuItemCollection)
		menus = mongodoc.NewMenuRepository(db, cfg.ProviderCollection, cfg.CategoryCollection, cfg.MenuItemCollection)
	} else {
		logger.Warn("no MongoDB client, data lives in process memory")
		store := memory.New()
		providers = store.Providers()
		categories = store.Categories()
		menuItems = store.MenuItems()
		menus = store.Menus()
	}

	srv.providerService = adminapp.NewProviderService(providers, adminCache, logger.Named("providers"))
	srv.categoryService = adminapp.NewCategoryService(categories, menuItems, adminCache, logger.Named("categories"))
	srv.menuItemService = adminapp.NewMenuItemService(menuItems, categories, adminCache, logger.Named("menu_items"))
	srv.menuQueries = publicapp.NewMenuQueryService(menus, menuCache, logger.Named("menus"))
	return srv, nil
}

// Handler assembles the router.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(s.metrics.middleware)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}))

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger.Named("public"),
		MenuQueries:    s.menuQueries,
		RequestTimeout: s.requestTimeout,
	})
	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:          s.logger.Named("admin"),
		ProviderService: s.providerService,
		CategoryService: s.categoryService,
		MenuItemService: s.menuItemService,
		RequestTimeout:  s.requestTimeout,
	})
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestSize(commonhttp.MaxRequestBody * 2))
		publicHandler.Register(r, s.authMiddleware)
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			adminHandler.Register(r)
		})
	})
	return router
}

// Run serves until the process receives SIGINT/SIGTERM or the listener
// fails.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s)
}

// requestLogger writes one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// healthHandler reports infrastructure state only.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{
			"status": "ok",
			"store":  "memory",
			"cache":  "disabled",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		}
		code := http.StatusOK
		if s.client != nil {
			status["store"] = "mongo"
			if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
				status["status"] = "degraded"
				status["store"] = err.Error()
				code = http.StatusServiceUnavailable
			}
		}
		if s.redis != nil {
			status["cache"] = "redis"
			// a cold cache only slows the storefront down
			if err := s.redis.Ping(ctx).Err(); err != nil {
				status["cache"] = err.Error()
			}
		}
		commonhttp.WriteJSON(s.logger, w, code, status)
	}
}

// shutdown closes the external clients.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if s.client != nil {
		if err := s.client.Disconnect(shutdownCtx); err != nil {
			s.logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("redis close failed", zap.Error(err))
		}
	}
}

// waitForShutdown blocks on the listener and OS signals, then drains.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("http server: %w", err)
		}
	case sig := <-sigChan:
		srv.logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Warn("http shutdown failed", zap.Error(err))
		}
	}

	srv.shutdown(context.Background())
	return runErr
}

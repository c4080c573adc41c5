package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sngm3741/menu-studio/api/internal/form"
	"github.com/sngm3741/menu-studio/api/internal/public/domain"
)

type menuQueryService struct {
	repo   MenuRepository
	cache  MenuCache
	logger *zap.Logger
}

// NewMenuQueryService creates a menu query service. cache may be nil.
func NewMenuQueryService(repo MenuRepository, cache MenuCache, logger *zap.Logger) MenuQueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &menuQueryService{repo: repo, cache: cache, logger: logger}
}

// Menu resolves the storefront by slug on every call so a renamed slug
// stops resolving at once. Only the category and item reads are cached.
func (s *menuQueryService) Menu(ctx context.Context, slug string) (*domain.Menu, error) {
	slug = strings.TrimSpace(slug)
	if !form.IsValidSlug(slug, form.StrictSlug) {
		return nil, domain.ErrNotFound
	}
	storefront, err := s.repo.FindStorefront(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, storefront.ID)
		if err != nil {
			s.logger.Warn("menu cache read failed", zap.String("providerId", storefront.ID), zap.Error(err))
		}
		if cached != nil && cached.Storefront.UpdatedAt.Equal(storefront.UpdatedAt) {
			return cached, nil
		}
	}

	categories, err := s.repo.FindCategories(ctx, storefront.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.FindMenuItems(ctx, storefront.ID)
	if err != nil {
		return nil, err
	}
	menu := domain.BuildMenu(*storefront, categories, items)

	if s.cache != nil {
		if err := s.cache.Set(ctx, storefront.ID, &menu); err != nil {
			s.logger.Warn("menu cache write failed", zap.String("providerId", storefront.ID), zap.Error(err))
		}
	}
	return &menu, nil
}

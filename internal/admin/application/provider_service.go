package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	admindomain "github.com/sngm3741/menu-studio/api/internal/admin/domain"
	"github.com/sngm3741/menu-studio/api/internal/form"
)

type providerService struct {
	repo   ProviderRepository
	cache  MenuCache
	logger *zap.Logger
	now    func() time.Time
}

func NewProviderService(repo ProviderRepository, cache MenuCache, logger *zap.Logger) ProviderService {
	return &providerService{repo: repo, cache: cacheOrNop(cache), logger: loggerOrNop(logger), now: utcNow}
}

func (s *providerService) Detail(ctx context.Context, tenantID, id string) (*admindomain.Provider, error) {
	if err := authorize(tenantID, id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Update applies the present sections of cmd. The first update of a tenant
// creates its provider and must carry the profile.
func (s *providerService) Update(ctx context.Context, tenantID, id string, cmd UpdateProviderCommand) (*admindomain.Provider, error) {
	if err := authorize(tenantID, id); err != nil {
		return nil, err
	}

	now := s.now()
	provider, err := s.repo.FindByID(ctx, id)
	switch {
	case errors.Is(err, admindomain.ErrNotFound):
		if cmd.Profile == nil {
			return nil, fmt.Errorf("%w: businessName is required", admindomain.ErrInvalid)
		}
		provider = &admindomain.Provider{
			ID:           id,
			WorkingHours: form.DefaultWorkingHours(),
			Settings:     admindomain.Settings(form.DefaultProviderSettings()),
			CreatedAt:    now,
		}
	case err != nil:
		return nil, err
	}

	if cmd.Profile != nil {
		if err := s.applyProfile(ctx, provider, *cmd.Profile); err != nil {
			return nil, err
		}
	}
	if cmd.Branches != nil {
		branches, err := admindomain.NewBranches(*cmd.Branches)
		if err != nil {
			return nil, err
		}
		provider.Branches = branches
	}
	if cmd.WorkingHours != nil {
		hours, err := admindomain.NewWorkingHours(*cmd.WorkingHours)
		if err != nil {
			return nil, err
		}
		provider.WorkingHours = hours
	}
	if cmd.Settings != nil {
		settings, err := admindomain.NewSettings(*cmd.Settings)
		if err != nil {
			return nil, err
		}
		provider.Settings = settings
	}
	provider.UpdatedAt = now

	if err := s.repo.Save(ctx, provider); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, id)
	return provider, nil
}

func (s *providerService) applyProfile(ctx context.Context, p *admindomain.Provider, cmd ProviderProfileCommand) error {
	name, err := admindomain.NewName(cmd.BusinessName, "businessName")
	if err != nil {
		return err
	}
	slug, err := admindomain.NewSlug(cmd.Slug, cmd.BusinessName, form.StrictSlug)
	if err != nil {
		return err
	}
	if slug != p.Slug {
		taken, err := s.repo.SlugTaken(ctx, slug.String(), p.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: slug %q is already used by another business", admindomain.ErrConflict, slug)
		}
	}
	email, err := admindomain.NewEmail(cmd.Email)
	if err != nil {
		return err
	}
	website, err := admindomain.NewURL(cmd.Website)
	if err != nil {
		return err
	}
	logo, err := admindomain.NewURL(cmd.Logo)
	if err != nil {
		return err
	}
	cover, err := admindomain.NewURL(cmd.CoverImage)
	if err != nil {
		return err
	}

	p.BusinessName = name
	p.Slug = slug
	p.Description = strings.TrimSpace(cmd.Description)
	p.Phone = strings.TrimSpace(cmd.Phone)
	p.Email = email
	p.Website = website
	p.Address = strings.TrimSpace(cmd.Address)
	p.Logo = logo
	p.CoverImage = cover
	p.Cuisines = admindomain.NewTagList(cmd.Cuisines)
	p.Features = admindomain.NewTagList(cmd.Features)
	return nil
}

func authorize(tenantID, providerID string) error {
	if strings.TrimSpace(tenantID) == "" || tenantID != providerID {
		return admindomain.ErrForbidden
	}
	return nil
}

func invalidate(ctx context.Context, cache MenuCache, logger *zap.Logger, providerID string) {
	if err := cache.Invalidate(ctx, providerID); err != nil {
		logger.Warn("menu cache invalidation failed", zap.String("providerId", providerID), zap.Error(err))
	}
}

type nopCache struct{}

func (nopCache) Invalidate(context.Context, string) error { return nil }

func cacheOrNop(c MenuCache) MenuCache {
	if c == nil {
		return nopCache{}
	}
	return c
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func utcNow() time.Time {
	return time.Now().UTC()
}

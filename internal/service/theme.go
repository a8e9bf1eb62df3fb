package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
)

// Storefront defaults served until a tenant saves its own theme.
const (
	DefaultPrimaryColor = "#4f46e5"
	DefaultHeroHeading  = "Welcome to our store"
	DefaultHeroSubtext  = "Quality products, daily budget prices"
)

type ThemeService struct {
	Repo *repo.GormRepo
}

// GetTheme never reports a missing document; a tenant with no stored
// settings gets the defaults.
func (s *ThemeService) GetTheme(ctx context.Context, tenantID string) (*models.ThemeSettings, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}

	theme, err := s.Repo.GetTheme(ctx, tenantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ThemeSettings{
			TenantID:           tenantID,
			PrimaryColor:       DefaultPrimaryColor,
			HeroHeading:        DefaultHeroHeading,
			HeroSubtext:        DefaultHeroSubtext,
			FeaturedCategories: []string{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return theme, nil
}

// SetTheme replaces the tenant's theme document unconditionally.
func (s *ThemeService) SetTheme(ctx context.Context, req transport.SetThemeRequest) (*models.ThemeSettings, error) {
	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}

	theme := &models.ThemeSettings{
		TenantID:           req.TenantID,
		PrimaryColor:       req.PrimaryColor,
		HeroHeading:        req.HeroHeading,
		HeroSubtext:        req.HeroSubtext,
		LogoURL:            req.LogoURL,
		FeaturedCategories: req.FeaturedCategories,
	}
	if err := s.Repo.UpsertTheme(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

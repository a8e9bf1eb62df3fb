package service

import (
	"context"
	"fmt"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
)

type TenantService struct {
	Repo *repo.GormRepo
}

func (s *TenantService) CreateTenant(ctx context.Context, req transport.CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	plan := req.Plan
	if plan == "" {
		plan = "free"
	}

	tenant := &models.Tenant{
		Name:         req.Name,
		Domain:       req.Domain,
		Plan:         plan,
		ContactEmail: req.ContactEmail,
	}
	if err := s.Repo.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) ListTenants(ctx context.Context, limit int) ([]models.Tenant, error) {
	return s.Repo.ListTenants(ctx, limit)
}

// requireTenant is the shared owning-tenant existence check every
// tenant-scoped create performs first.
func requireTenant(ctx context.Context, r *repo.GormRepo, tenantID string) error {
	if !validID(tenantID) {
		return fmt.Errorf("%w: invalid tenant id", ErrValidation)
	}
	ok, err := r.TenantExists(ctx, tenantID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: tenant", ErrNotFound)
	}
	return nil
}

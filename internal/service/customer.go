package service

import (
	"context"
	"fmt"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
)

type CustomerService struct {
	Repo *repo.GormRepo
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req transport.CreateCustomerRequest) (*models.Customer, error) {
	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}

	customer := &models.Customer{
		TenantID: req.TenantID,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := s.Repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, tenantID, q string, limit int) ([]models.Customer, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	return s.Repo.ListCustomers(ctx, tenantID, q, limit)
}

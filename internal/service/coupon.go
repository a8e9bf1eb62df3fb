package service

import (
	"context"
	"fmt"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
)

type CouponService struct {
	Repo *repo.GormRepo
}

func (s *CouponService) CreateCoupon(ctx context.Context, req transport.CreateCouponRequest) (*models.Coupon, error) {
	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code required", ErrValidation)
	}
	if req.PercentOff < 0 || req.PercentOff > 100 {
		return nil, fmt.Errorf("%w: percent_off must be between 0 and 100", ErrValidation)
	}
	if req.AmountOff < 0 {
		return nil, fmt.Errorf("%w: amount_off must be >= 0", ErrValidation)
	}

	// Codes are unique per tenant; the same code may exist for another tenant.
	exists, err := s.Repo.CouponCodeExists(ctx, req.TenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: coupon code already exists", ErrConflict)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	coupon := &models.Coupon{
		TenantID:       req.TenantID,
		Code:           req.Code,
		PercentOff:     req.PercentOff,
		AmountOff:      req.AmountOff,
		Active:         active,
		MaxRedemptions: req.MaxRedemptions,
	}
	if err := s.Repo.CreateCoupon(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) ListCoupons(ctx context.Context, tenantID string, active *bool, limit int) ([]models.Coupon, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	return s.Repo.ListCoupons(ctx, tenantID, active, limit)
}

package repo

import (
	"context"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) CreateCoupon(ctx context.Context, c *models.Coupon) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) CouponCodeExists(ctx context.Context, tenantID, code string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Coupon{}).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *GormRepo) FindActiveCoupon(ctx context.Context, tenantID, code string) (*models.Coupon, error) {
	var c models.Coupon
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND code = ? AND active = ?", tenantID, code, true).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) ListCoupons(ctx context.Context, tenantID string, active *bool, limit int) ([]models.Coupon, error) {
	query := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	coupons := []models.Coupon{}
	if err := query.Limit(limit).Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
)

// PlaceOrder persists the order, reserves stock and bumps the coupon
// redemption counter in a single transaction. Stock decrements are guarded
// (`stock >= quantity`), so two orders racing on the same product cannot
// drive stock negative; the loser rolls back with ErrStockConflict.
func (r *GormRepo) PlaceOrder(ctx context.Context, order *models.Order, couponID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range order.Items {
			it := &order.Items[i]
			res := tx.Model(&models.Product{}).
				Where("id = ? AND tenant_id = ? AND stock >= ?", it.ProductID, order.TenantID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %q", ErrStockConflict, it.Title)
			}
		}

		if couponID != "" {
			err := tx.Model(&models.Coupon{}).Where("id = ?", couponID).
				UpdateColumn("times_redeemed", gorm.Expr("times_redeemed + 1")).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) ListOrders(ctx context.Context, tenantID string, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

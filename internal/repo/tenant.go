package repo

import (
	"context"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) CreateTenant(ctx context.Context, t *models.Tenant) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) ListTenants(ctx context.Context, limit int) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	if err := r.DB.WithContext(ctx).Limit(limit).Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *GormRepo) TenantExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Tenant{}).Where("id = ?", id).Limit(1).Count(&count).Error
	return count > 0, err
}

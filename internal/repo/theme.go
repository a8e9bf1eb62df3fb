package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) GetTheme(ctx context.Context, tenantID string) (*models.ThemeSettings, error) {
	var t models.ThemeSettings
	err := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpsertTheme replaces the tenant's theme document wholesale, creating it on
// first write. At most one row per tenant ever exists.
func (r *GormRepo) UpsertTheme(ctx context.Context, t *models.ThemeSettings) error {
	var existing models.ThemeSettings
	err := r.DB.WithContext(ctx).Where("tenant_id = ?", t.TenantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.WithContext(ctx).Create(t).Error
	}
	if err != nil {
		return err
	}
	t.ID = existing.ID
	return r.DB.WithContext(ctx).Save(t).Error
}

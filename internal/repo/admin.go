package repo

import (
	"context"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) CreateAdminUser(ctx context.Context, u *models.AdminUser) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) AdminUserExists(ctx context.Context, tenantID, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.AdminUser{}).
		Where("tenant_id = ? AND email = ?", tenantID, email).
		Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *GormRepo) FindAdminUser(ctx context.Context, tenantID, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND email = ?", tenantID, email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

package repo

import (
	"context"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) CreateWebhook(ctx context.Context, w *models.Webhook) error {
	return r.DB.WithContext(ctx).Create(w).Error
}

func (r *GormRepo) ListWebhooks(ctx context.Context, tenantID string, active *bool, limit int) ([]models.Webhook, error) {
	query := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if active != nil {
		query = query.Where("active = ?", *active)
	}

	hooks := []models.Webhook{}
	if err := query.Limit(limit).Find(&hooks).Error; err != nil {
		return nil, err
	}
	return hooks, nil
}

func (r *GormRepo) ActiveWebhooks(ctx context.Context, tenantID string) ([]models.Webhook, error) {
	hooks := []models.Webhook{}
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Find(&hooks).Error
	if err != nil {
		return nil, err
	}
	return hooks, nil
}

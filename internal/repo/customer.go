package repo

import (
	"context"
	"strings"

	"github.com/dailybudgetmart/backend/internal/models"
)

func (r *GormRepo) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) ListCustomers(ctx context.Context, tenantID, q string, limit int) ([]models.Customer, error) {
	query := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if q != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	customers := []models.Customer{}
	if err := query.Limit(limit).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
)

// ErrStockConflict is returned when a conditional stock update matches no
// row, i.e. the product vanished or its stock dropped below the requested
// quantity between read and write.
var ErrStockConflict = errors.New("stock conflict")

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, tenantID, id string) (*models.Product, error) {
	var p models.Product
	err := r.DB.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts filters by tenant and an optional case-insensitive substring
// match on the title.
func (r *GormRepo) ListProducts(ctx context.Context, tenantID, q string, limit int) ([]models.Product, error) {
	query := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if q != "" {
		query = query.Where("lower(title) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	products := []models.Product{}
	if err := query.Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// AdjustStock applies delta to a product's stock, guarded so stock can never
// go negative. Returns ErrStockConflict when the guard rejects the update.
func (r *GormRepo) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*models.Product, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND tenant_id = ? AND stock + ? >= 0", id, tenantID, delta).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: product %s", ErrStockConflict, id)
	}
	return r.GetProduct(ctx, tenantID, id)
}

package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.AdminUser{},
		&models.Webhook{},
		&models.ThemeSettings{},
	))

	return &repo.GormRepo{DB: db}
}

func seedTenant(t *testing.T, r *repo.GormRepo) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{Name: "Acme Store", Plan: "free"}
	require.NoError(t, r.CreateTenant(context.Background(), tenant))
	return tenant
}

func seedProduct(t *testing.T, r *repo.GormRepo, tenantID, title string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		TenantID: tenantID,
		Title:    title,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}

func seedCoupon(t *testing.T, r *repo.GormRepo, tenantID, code string, percentOff, amountOff float64, active bool) *models.Coupon {
	t.Helper()

	coupon := &models.Coupon{
		TenantID:   tenantID,
		Code:       code,
		PercentOff: percentOff,
		AmountOff:  amountOff,
		Active:     active,
	}
	require.NoError(t, r.CreateCoupon(context.Background(), coupon))
	return coupon
}

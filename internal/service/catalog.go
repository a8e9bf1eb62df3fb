package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/events"
	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/search"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Search   *search.Service
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]interface{}) {
	if s.Producer == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pctx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka publish failed", "topic", events.TopicProductEvents, "error", err)
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Stock:       req.Stock,
		Category:    req.Category,
		IsActive:    isActive,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.Search.Index(ctx, product)
	s.publish(ctx, product.TenantID, map[string]interface{}{
		"type":       "product_created",
		"product_id": product.ID,
		"tenant_id":  product.TenantID,
		"title":      product.Title,
	})
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, tenantID, id string) (*models.Product, error) {
	if !validID(id) || !validID(tenantID) {
		return nil, fmt.Errorf("%w: invalid id format", ErrValidation)
	}
	product, err := s.Repo.GetProduct(ctx, tenantID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, tenantID, q string, limit int) ([]models.Product, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	return s.Repo.ListProducts(ctx, tenantID, q, limit)
}

// AdjustStock applies a signed delta to a product's stock; the store-level
// guard keeps the result non-negative.
func (s *CatalogService) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*models.Product, error) {
	product, err := s.GetProduct(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.AdjustStock(ctx, tenantID, id, delta)
	if errors.Is(err, repo.ErrStockConflict) {
		return nil, fmt.Errorf("%w for %q", ErrInsufficientStock, product.Title)
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, tenantID, map[string]interface{}{
		"type":       "product_stock_changed",
		"product_id": updated.ID,
		"tenant_id":  tenantID,
		"stock":      updated.Stock,
	})
	return updated, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/events"
	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/internal/webhook"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Hooks    *webhook.Dispatcher
	Producer *events.Producer
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateOrder runs the whole checkout: feasibility, pricing, persistence,
// inventory, notification. Validation over all items completes before any
// write, so a failing item leaves no partial order and no touched stock.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*transport.CreateOrderResponse, error) {
	l := logging.FromContext(ctx).With("svc", "order.create", "tenant_id", req.TenantID)

	if err := requireTenant(ctx, s.Repo, req.TenantID); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}
	if req.CustomerID != "" && !validID(req.CustomerID) {
		return nil, fmt.Errorf("%w: invalid customer id", ErrValidation)
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == "" || !validID(it.ProductID) {
			return nil, fmt.Errorf("%w: invalid product id", ErrValidation)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}

		product, err := s.Repo.GetProduct(ctx, req.TenantID, it.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		if product.Stock < it.Quantity {
			return nil, fmt.Errorf("%w for %q", ErrInsufficientStock, product.Title)
		}

		// Price and title are snapshotted here; later product edits must not
		// leak into the persisted order.
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  it.Quantity,
			Price:     product.Price,
			Title:     product.Title,
		})
		subtotal += product.Price * float64(it.Quantity)
	}

	var discount float64
	var couponID string
	if req.CouponCode != "" {
		coupon, err := s.Repo.FindActiveCoupon(ctx, req.TenantID, req.CouponCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCoupon, req.CouponCode)
		}
		if err != nil {
			return nil, err
		}
		// percent_off and amount_off are additive when both are set.
		// max_redemptions is stored on the coupon but not enforced here.
		discount = subtotal*coupon.PercentOff/100 + coupon.AmountOff
		couponID = coupon.ID
	}

	subtotal = round2(subtotal)
	discount = round2(discount)
	total := round2(subtotal - discount)
	if total < 0 {
		total = 0
	}

	order := &models.Order{
		TenantID:      req.TenantID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPending,
	}
	if err := s.Repo.PlaceOrder(ctx, order, couponID); err != nil {
		if errors.Is(err, repo.ErrStockConflict) {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, err)
		}
		return nil, err
	}

	l.Info("order created", "order_id", order.ID, "total", total, "items", len(items))

	s.Hooks.Notify(req.TenantID, "order.created", map[string]interface{}{
		"order_id": order.ID,
		"total":    total,
		"coupon":   req.CouponCode,
	})
	s.publish(ctx, req.TenantID, map[string]interface{}{
		"type":      "order_created",
		"order_id":  order.ID,
		"tenant_id": req.TenantID,
		"total":     total,
	})

	return &transport.CreateOrderResponse{
		ID:       order.ID,
		Total:    total,
		Subtotal: subtotal,
		Discount: discount,
	}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, tenantID string, limit int) ([]models.Order, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	return s.Repo.ListOrders(ctx, tenantID, limit)
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]interface{}) {
	if s.Producer == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pctx, events.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(ctx).Warn("kafka publish failed", "topic", events.TopicOrderEvents, "error", err)
	}
}

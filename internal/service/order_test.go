package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybudgetmart/backend/internal/transport"
)

func TestOrderService_CreateOrder_TotalsAndStock(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	shirt := seedProduct(t, r, tenant.ID, "Blue Shirt", 19.99, 10)
	mug := seedProduct(t, r, tenant.ID, "Coffee Mug", 7.50, 5)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	resp, err := svc.CreateOrder(ctx, transport.CreateOrderRequest{
		TenantID: tenant.ID,
		Items: []transport.CreateOrderItem{
			{ProductID: shirt.ID, Quantity: 2},
			{ProductID: mug.ID, Quantity: 3},
		},
		CustomerName: "Jane",
	})
	require.NoError(t, err)

	assert.Equal(t, 62.48, resp.Subtotal)
	assert.Equal(t, 0.0, resp.Discount)
	assert.Equal(t, 62.48, resp.Total)
	require.NotEmpty(t, resp.ID)

	gotShirt, err := r.GetProduct(ctx, tenant.ID, shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, gotShirt.Stock)

	gotMug, err := r.GetProduct(ctx, tenant.ID, mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, gotMug.Stock)

	orders, err := svc.ListOrders(ctx, tenant.ID, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", orders[0].Status)
	require.Len(t, orders[0].Items, 2)
}

func TestOrderService_CreateOrder_PriceSnapshot(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	shirt := seedProduct(t, r, tenant.ID, "Blue Shirt", 10.00, 10)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, transport.CreateOrderRequest{
		TenantID: tenant.ID,
		Items:    []transport.CreateOrderItem{{ProductID: shirt.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// A later price change must not leak into the persisted order.
	require.NoError(t, r.DB.Model(shirt).UpdateColumn("price", 99.99).Error)

	orders, err := svc.ListOrders(ctx, tenant.ID, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 10.00, orders[0].Items[0].Price)
	assert.Equal(t, "Blue Shirt", orders[0].Items[0].Title)
}

func TestOrderService_CreateOrder_CouponMath(t *testing.T) {
	tests := []struct {
		name       string
		percentOff float64
		amountOff  float64
		discount   float64
		total      float64
	}{
		{name: "percent only", percentOff: 10, discount: 10.00, total: 90.00},
		{name: "amount only", amountOff: 15, discount: 15.00, total: 85.00},
		{name: "both additive", percentOff: 10, amountOff: 5, discount: 15.00, total: 85.00},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRepo(t)
			tenant := seedTenant(t, r)
			product := seedProduct(t, r, tenant.ID, "Blue Shirt", 100.00, 10)
			seedCoupon(t, r, tenant.ID, "SAVE", tt.percentOff, tt.amountOff, true)

			svc := &OrderService{Repo: r}
			resp, err := svc.CreateOrder(context.Background(), transport.CreateOrderRequest{
				TenantID:   tenant.ID,
				Items:      []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
				CouponCode: "SAVE",
			})
			require.NoError(t, err)

			assert.Equal(t, 100.00, resp.Subtotal)
			assert.Equal(t, tt.discount, resp.Discount)
			assert.Equal(t, tt.total, resp.Total)
		})
	}
}

func TestOrderService_CreateOrder_TotalNeverNegative(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Sticker", 2.00, 10)
	seedCoupon(t, r, tenant.ID, "BIG", 0, 50, true)

	svc := &OrderService{Repo: r}
	resp, err := svc.CreateOrder(context.Background(), transport.CreateOrderRequest{
		TenantID:   tenant.ID,
		Items:      []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
		CouponCode: "BIG",
	})
	require.NoError(t, err)

	assert.Equal(t, 2.00, resp.Subtotal)
	assert.Equal(t, 50.00, resp.Discount)
	assert.Equal(t, 0.0, resp.Total)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	shirt := seedProduct(t, r, tenant.ID, "Blue Shirt", 10.00, 5)
	mug := seedProduct(t, r, tenant.ID, "Coffee Mug", 5.00, 1)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, transport.CreateOrderRequest{
		TenantID: tenant.ID,
		Items: []transport.CreateOrderItem{
			{ProductID: shirt.ID, Quantity: 2},
			{ProductID: mug.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Coffee Mug")

	// No partial order, no partial decrement.
	gotShirt, err := r.GetProduct(ctx, tenant.ID, shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotShirt.Stock)

	gotMug, err := r.GetProduct(ctx, tenant.ID, mug.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotMug.Stock)

	orders, err := svc.ListOrders(ctx, tenant.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateOrder_RedemptionCounter(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Blue Shirt", 10.00, 3)
	coupon := seedCoupon(t, r, tenant.ID, "SAVE10", 10, 0, true)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, transport.CreateOrderRequest{
		TenantID:   tenant.ID,
		Items:      []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
		CouponCode: "SAVE10",
	})
	require.NoError(t, err)

	got, err := r.FindActiveCoupon(ctx, tenant.ID, coupon.Code)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TimesRedeemed)

	// A failing order must not bump the counter.
	_, err = svc.CreateOrder(ctx, transport.CreateOrderRequest{
		TenantID:   tenant.ID,
		Items:      []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 100}},
		CouponCode: "SAVE10",
	})
	require.Error(t, err)

	got, err = r.FindActiveCoupon(ctx, tenant.ID, coupon.Code)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TimesRedeemed)
}

func TestOrderService_CreateOrder_InvalidCoupon(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Blue Shirt", 10.00, 5)
	seedCoupon(t, r, tenant.ID, "EXPIRED", 10, 0, false)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	for _, code := range []string{"NOPE", "EXPIRED"} {
		_, err := svc.CreateOrder(ctx, transport.CreateOrderRequest{
			TenantID:   tenant.ID,
			Items:      []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
			CouponCode: code,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCoupon)
	}

	// Coupon failure happens before persistence: stock untouched.
	got, err := r.GetProduct(ctx, tenant.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Blue Shirt", 10.00, 5)

	svc := &OrderService{Repo: r}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateOrderRequest
		want error
	}{
		{
			name: "unknown tenant",
			req: transport.CreateOrderRequest{
				TenantID: uuid.NewString(),
				Items:    []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 1}},
			},
			want: ErrNotFound,
		},
		{
			name: "no items",
			req:  transport.CreateOrderRequest{TenantID: tenant.ID},
			want: ErrValidation,
		},
		{
			name: "malformed product id",
			req: transport.CreateOrderRequest{
				TenantID: tenant.ID,
				Items:    []transport.CreateOrderItem{{ProductID: "not-a-uuid", Quantity: 1}},
			},
			want: ErrValidation,
		},
		{
			name: "non-positive quantity",
			req: transport.CreateOrderRequest{
				TenantID: tenant.ID,
				Items:    []transport.CreateOrderItem{{ProductID: product.ID, Quantity: 0}},
			},
			want: ErrValidation,
		},
		{
			name: "unknown product",
			req: transport.CreateOrderRequest{
				TenantID: tenant.ID,
				Items:    []transport.CreateOrderItem{{ProductID: uuid.NewString(), Quantity: 1}},
			},
			want: ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybudgetmart/backend/internal/transport"
)

func TestCatalogService_CreateProduct_Defaults(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)

	svc := &CatalogService{Repo: r}
	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		TenantID: tenant.ID,
		Title:    "Blue Shirt",
		Price:    19.99,
		Stock:    3,
	})
	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.NotEmpty(t, product.ID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)

	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
		want error
	}{
		{name: "unknown tenant", req: transport.CreateProductRequest{TenantID: uuid.NewString(), Title: "X", Price: 1}, want: ErrNotFound},
		{name: "missing title", req: transport.CreateProductRequest{TenantID: tenant.ID, Price: 1}, want: ErrValidation},
		{name: "negative price", req: transport.CreateProductRequest{TenantID: tenant.ID, Title: "X", Price: -1}, want: ErrValidation},
		{name: "negative stock", req: transport.CreateProductRequest{TenantID: tenant.ID, Title: "X", Price: 1, Stock: -1}, want: ErrValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogService_ListProducts_SubstringCaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	other := seedTenant(t, r)
	seedProduct(t, r, tenant.ID, "Blue Shirt", 19.99, 3)
	seedProduct(t, r, tenant.ID, "Coffee Mug", 7.50, 3)
	seedProduct(t, r, other.ID, "Red Shirt", 9.99, 3)

	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	got, err := svc.ListProducts(ctx, tenant.ID, "shirt", 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Blue Shirt", got[0].Title)

	// No query returns everything the tenant owns, and nothing else.
	all, err := svc.ListProducts(ctx, tenant.ID, "", 100)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCatalogService_GetProduct_TenantScoped(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	other := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Blue Shirt", 19.99, 3)

	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	got, err := svc.GetProduct(ctx, tenant.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)

	// Another tenant cannot read it.
	_, err = svc.GetProduct(ctx, other.ID, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(ctx, tenant.ID, "not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_AdjustStock(t *testing.T) {
	r := newTestRepo(t)
	tenant := seedTenant(t, r)
	product := seedProduct(t, r, tenant.ID, "Blue Shirt", 19.99, 5)

	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	updated, err := svc.AdjustStock(ctx, tenant.ID, product.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Stock)

	updated, err = svc.AdjustStock(ctx, tenant.ID, product.ID, -12)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)

	// The guard refuses to take stock below zero.
	_, err = svc.AdjustStock(ctx, tenant.ID, product.ID, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

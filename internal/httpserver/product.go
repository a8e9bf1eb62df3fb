package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Warn("create_product_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_product_success", "product_id", product.ID, "tenant_id", product.TenantID)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: product.ID})
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.Svc.GetProduct(ctx, c.QueryParam("tenant_id"), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 100)
	products, err := h.Svc.ListProducts(ctx, c.QueryParam("tenant_id"), c.QueryParam("q"), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) PatchStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.patch_stock")

	var req transport.PatchStockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_stock_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.AdjustStock(ctx, c.QueryParam("tenant_id"), c.Param("id"), req.Delta)
	if err != nil {
		l.Warn("patch_stock_failed", "error", err)
		return httpError(err)
	}

	l.Info("patch_stock_success", "product_id", product.ID, "stock", product.Stock)
	return c.JSON(http.StatusOK, product)
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		l.Warn("create_order_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_order_success", "order_id", resp.ID, "total", resp.Total)
	return c.JSON(http.StatusCreated, resp)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 100)
	orders, err := h.Svc.ListOrders(ctx, c.QueryParam("tenant_id"), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

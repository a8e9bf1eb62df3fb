package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "customer.create")

	var req transport.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_customer_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Svc.CreateCustomer(ctx, req)
	if err != nil {
		l.Warn("create_customer_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_customer_success", "customer_id", customer.ID)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: customer.ID})
}

func (h *CustomerHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 50)
	customers, err := h.Svc.ListCustomers(ctx, c.QueryParam("tenant_id"), c.QueryParam("q"), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

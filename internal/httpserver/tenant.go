package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type TenantHTTP struct {
	Svc *service.TenantService
}

func (h *TenantHTTP) CreateTenant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tenant.create")

	var req transport.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_tenant_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	tenant, err := h.Svc.CreateTenant(ctx, req)
	if err != nil {
		l.Warn("create_tenant_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_tenant_success", "tenant_id", tenant.ID)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: tenant.ID})
}

func (h *TenantHTTP) ListTenants(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 50)
	tenants, err := h.Svc.ListTenants(ctx, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tenants)
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type AdminHTTP struct {
	Svc *service.AuthService
}

func (h *AdminHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		l.Warn("register_failed", "error", err)
		return httpError(err)
	}

	l.Info("register_success", "user_id", user.ID, "tenant_id", user.TenantID)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: user.ID})
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

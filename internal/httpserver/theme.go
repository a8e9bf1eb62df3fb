package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type ThemeHTTP struct {
	Svc *service.ThemeService
}

func (h *ThemeHTTP) GetTheme(c echo.Context) error {
	ctx := c.Request().Context()

	theme, err := h.Svc.GetTheme(ctx, c.QueryParam("tenant_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, theme)
}

func (h *ThemeHTTP) SetTheme(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "theme.set")

	var req transport.SetThemeRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("set_theme_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	theme, err := h.Svc.SetTheme(ctx, req)
	if err != nil {
		l.Warn("set_theme_failed", "error", err)
		return httpError(err)
	}

	l.Info("set_theme_success", "tenant_id", theme.TenantID)
	return c.JSON(http.StatusOK, theme)
}

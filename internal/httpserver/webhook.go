package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type WebhookHTTP struct {
	Svc *service.WebhookService
}

func (h *WebhookHTTP) CreateWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "webhook.create")

	var req transport.CreateWebhookRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_webhook_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	hook, err := h.Svc.CreateWebhook(ctx, req)
	if err != nil {
		l.Warn("create_webhook_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_webhook_success", "webhook_id", hook.ID, "url", hook.URL)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: hook.ID})
}

func (h *WebhookHTTP) ListWebhooks(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 50)
	active := parseBoolPtr(c.QueryParam("active"))
	hooks, err := h.Svc.ListWebhooks(ctx, c.QueryParam("tenant_id"), active, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, hooks)
}

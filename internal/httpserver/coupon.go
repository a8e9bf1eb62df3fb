package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/service"
	"github.com/dailybudgetmart/backend/internal/transport"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

type CouponHTTP struct {
	Svc *service.CouponService
}

func (h *CouponHTTP) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.create")

	var req transport.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_coupon_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	coupon, err := h.Svc.CreateCoupon(ctx, req)
	if err != nil {
		l.Warn("create_coupon_failed", "error", err)
		return httpError(err)
	}

	l.Info("create_coupon_success", "coupon_id", coupon.ID, "code", coupon.Code)
	return c.JSON(http.StatusCreated, transport.IDResponse{ID: coupon.ID})
}

func (h *CouponHTTP) ListCoupons(c echo.Context) error {
	ctx := c.Request().Context()

	limit := parseIntDefault(c.QueryParam("limit"), 50)
	active := parseBoolPtr(c.QueryParam("active"))
	coupons, err := h.Svc.ListCoupons(ctx, c.QueryParam("tenant_id"), active, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, coupons)
}

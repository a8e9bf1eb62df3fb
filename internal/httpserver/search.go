package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/search"
)

type SearchHTTP struct {
	Svc *search.Service
}

func (h *SearchHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID := c.QueryParam("tenant_id")
	q := c.QueryParam("q")
	if tenantID == "" || q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tenant_id and q required")
	}

	limit := parseIntDefault(c.QueryParam("limit"), 50)
	products, err := h.Svc.Search(ctx, tenantID, q, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search unavailable")
	}
	return c.JSON(http.StatusOK, products)
}

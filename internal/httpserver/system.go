package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/schemadoc"
)

type SystemHTTP struct {
	DB *gorm.DB
}

func (h *SystemHTTP) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":   "DailyBudgetMart",
		"status": "ok",
	})
}

// TestDatabase reports connectivity diagnostics for the admin panel.
func (h *SystemHTTP) TestDatabase(c echo.Context) error {
	resp := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"tables":            []string{},
	}

	if h.DB == nil {
		return c.JSON(http.StatusOK, resp)
	}

	sqlDB, err := h.DB.DB()
	if err != nil {
		resp["database"] = "error: " + err.Error()
		return c.JSON(http.StatusOK, resp)
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		resp["database"] = "error: " + err.Error()
		return c.JSON(http.StatusOK, resp)
	}

	resp["database"] = "connected"
	resp["connection_status"] = "connected"
	if tables, err := h.DB.Migrator().GetTables(); err == nil {
		if len(tables) > 10 {
			tables = tables[:10]
		}
		resp["tables"] = tables
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SystemHTTP) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, schemadoc.Describe())
}

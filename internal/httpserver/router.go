package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dailybudgetmart/backend/internal/metrics"
)

type Deps struct {
	Tenant   *TenantHTTP
	Admin    *AdminHTTP
	Theme    *ThemeHTTP
	Product  *ProductHTTP
	Customer *CustomerHTTP
	Coupon   *CouponHTTP
	Webhook  *WebhookHTTP
	Order    *OrderHTTP
	Search   *SearchHTTP
	System   *SystemHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", metrics.Handler())

	e.GET("/", d.System.Root)
	e.GET("/test", d.System.TestDatabase)
	e.GET("/schema", d.System.Schema)

	api := e.Group("/api")

	api.POST("/tenants", d.Tenant.CreateTenant)
	api.GET("/tenants", d.Tenant.ListTenants)

	api.POST("/admin/register", d.Admin.Register)
	api.POST("/admin/login", d.Admin.Login)

	api.GET("/theme", d.Theme.GetTheme)
	api.POST("/theme", d.Theme.SetTheme)

	api.POST("/products", d.Product.CreateProduct)
	api.GET("/products", d.Product.ListProducts)
	api.GET("/products/:id", d.Product.GetProduct)
	api.PATCH("/products/:id/stock", d.Product.PatchStock)

	api.POST("/customers", d.Customer.CreateCustomer)
	api.GET("/customers", d.Customer.ListCustomers)

	api.POST("/coupons", d.Coupon.CreateCoupon)
	api.GET("/coupons", d.Coupon.ListCoupons)

	api.POST("/webhooks", d.Webhook.CreateWebhook)
	api.GET("/webhooks", d.Webhook.ListWebhooks)

	api.POST("/orders", d.Order.CreateOrder)
	api.GET("/orders", d.Order.ListOrders)

	api.GET("/search", d.Search.SearchProducts)
}

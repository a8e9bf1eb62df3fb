package transport

type IDResponse struct {
	ID string `json:"id"`
}

type CreateTenantRequest struct {
	Name         string `json:"name"`
	Domain       string `json:"domain"`
	Plan         string `json:"plan"`
	ContactEmail string `json:"contact_email"`
}

type CreateProductRequest struct {
	TenantID    string  `json:"tenant_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

type PatchStockRequest struct {
	Delta int `json:"delta"`
}

type CreateCustomerRequest struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type CreateCouponRequest struct {
	TenantID       string  `json:"tenant_id"`
	Code           string  `json:"code"`
	PercentOff     float64 `json:"percent_off"`
	AmountOff      float64 `json:"amount_off"`
	Active         *bool   `json:"active"`
	MaxRedemptions int     `json:"max_redemptions"`
}

type CreateWebhookRequest struct {
	TenantID string   `json:"tenant_id"`
	URL      string   `json:"url"`
	Events   []string `json:"events"`
	Active   *bool    `json:"active"`
}

type CreateOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	TenantID      string            `json:"tenant_id"`
	Items         []CreateOrderItem `json:"items"`
	CustomerID    string            `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CouponCode    string            `json:"coupon_code"`
}

type CreateOrderResponse struct {
	ID       string  `json:"id"`
	Total    float64 `json:"total"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
}

type RegisterRequest struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type SetThemeRequest struct {
	TenantID           string   `json:"tenant_id"`
	PrimaryColor       string   `json:"primary_color"`
	HeroHeading        string   `json:"hero_heading"`
	HeroSubtext        string   `json:"hero_subtext"`
	LogoURL            string   `json:"logo_url"`
	FeaturedCategories []string `json:"featured_categories"`
}

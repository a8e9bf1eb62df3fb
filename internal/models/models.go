package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every tenant-owned record carries TenantID; filtering on it is the only
// isolation mechanism between storefronts.

type Tenant struct {
	ID           string `gorm:"primaryKey;size:36"   json:"id"`
	Name         string `gorm:"not null"             json:"name"`
	Domain       string `json:"domain,omitempty"`
	Plan         string `gorm:"not null;default:free" json:"plan"`
	ContactEmail string `json:"contact_email,omitempty"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type Product struct {
	ID          string  `gorm:"primaryKey;size:36"  json:"id"`
	TenantID    string  `gorm:"index;not null"      json:"tenant_id"`
	Title       string  `gorm:"not null"            json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `gorm:"not null"            json:"price"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `gorm:"not null;default:0"  json:"stock"`
	Category    string  `json:"category,omitempty"`
	IsActive    bool    `gorm:"not null"            json:"is_active"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Customer struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"index;not null"     json:"tenant_id"`
	Name     string `gorm:"not null"           json:"name"`
	Email    string `gorm:"not null"           json:"email"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// OrderItem snapshots price and title at order time; a later product price
// change must not affect persisted orders.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey"      json:"-"`
	OrderID   string  `gorm:"index;not null"  json:"-"`
	ProductID string  `gorm:"not null"        json:"product_id"`
	Quantity  int     `gorm:"not null"        json:"quantity"`
	Price     float64 `gorm:"not null"        json:"price"`
	Title     string  `json:"title,omitempty"`
}

type Order struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	TenantID      string      `gorm:"index;not null"     json:"tenant_id"`
	CustomerID    string      `json:"customer_id,omitempty"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total         float64     `gorm:"not null"           json:"total"`
	Status        string      `gorm:"not null;default:pending" json:"status"`
	CreatedAt     int64       `gorm:"autoCreateTime"     json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type Coupon struct {
	ID             string  `gorm:"primaryKey;size:36"              json:"id"`
	TenantID       string  `gorm:"index:idx_coupon_code;not null"  json:"tenant_id"`
	Code           string  `gorm:"index:idx_coupon_code;not null"  json:"code"`
	PercentOff     float64 `json:"percent_off,omitempty"`
	AmountOff      float64 `json:"amount_off,omitempty"`
	Active         bool    `gorm:"not null" json:"active"`
	MaxRedemptions int     `json:"max_redemptions,omitempty"`
	TimesRedeemed  int     `gorm:"not null;default:0" json:"times_redeemed"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

type AdminUser struct {
	ID           string `gorm:"primaryKey;size:36"             json:"id"`
	TenantID     string `gorm:"index:idx_admin_email;not null" json:"tenant_id"`
	Email        string `gorm:"index:idx_admin_email;not null" json:"email"`
	PasswordHash string `gorm:"not null"                       json:"-"`
	Role         string `gorm:"not null;default:owner"         json:"role"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Webhook struct {
	ID       string   `gorm:"primaryKey;size:36"     json:"id"`
	TenantID string   `gorm:"index;not null"         json:"tenant_id"`
	URL      string   `gorm:"not null"               json:"url"`
	Events   []string `gorm:"serializer:json"        json:"events"`
	Active   bool     `gorm:"not null"               json:"active"`
}

func (w *Webhook) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// ThemeSettings has exactly one row per tenant; writes are whole-document
// upserts keyed by tenant_id.
type ThemeSettings struct {
	ID                 string   `gorm:"primaryKey;size:36"    json:"id"`
	TenantID           string   `gorm:"uniqueIndex;not null"  json:"tenant_id"`
	PrimaryColor       string   `json:"primary_color"`
	HeroHeading        string   `json:"hero_heading"`
	HeroSubtext        string   `json:"hero_subtext"`
	LogoURL            string   `json:"logo_url,omitempty"`
	FeaturedCategories []string `gorm:"serializer:json" json:"featured_categories"`
}

func (t *ThemeSettings) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

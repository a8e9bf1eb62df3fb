// Package schemadoc exposes a static description of the entity schemas for
// migration tooling and the admin database viewer.
package schemadoc

type Entity struct {
	Fields  []string `json:"fields"`
	Indexes []string `json:"indexes"`
}

func Describe() map[string]Entity {
	return map[string]Entity{
		"tenant": {
			Fields:  []string{"name", "domain", "plan", "contact_email"},
			Indexes: []string{"domain"},
		},
		"product": {
			Fields:  []string{"tenant_id", "title", "description", "price", "image", "stock", "category", "is_active"},
			Indexes: []string{"tenant_id", "title"},
		},
		"customer": {
			Fields:  []string{"tenant_id", "name", "email"},
			Indexes: []string{"tenant_id", "email"},
		},
		"order": {
			Fields:  []string{"tenant_id", "customer_id", "customer_name", "customer_email", "items", "total", "status"},
			Indexes: []string{"tenant_id", "status"},
		},
		"coupon": {
			Fields:  []string{"tenant_id", "code", "percent_off", "amount_off", "active", "max_redemptions", "times_redeemed"},
			Indexes: []string{"tenant_id", "code"},
		},
		"adminuser": {
			Fields:  []string{"tenant_id", "email", "password_hash", "role"},
			Indexes: []string{"tenant_id", "email"},
		},
		"webhook": {
			Fields:  []string{"tenant_id", "url", "events", "active"},
			Indexes: []string{"tenant_id"},
		},
		"themesettings": {
			Fields:  []string{"tenant_id", "primary_color", "hero_heading", "hero_subtext", "logo_url", "featured_categories"},
			Indexes: []string{"tenant_id"},
		},
	}
}

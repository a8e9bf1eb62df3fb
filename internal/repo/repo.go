package repo

import "gorm.io/gorm"

// GormRepo is the single persistence layer. The *gorm.DB handle is opened in
// main and injected; no package-level connection state exists.
type GormRepo struct {
	DB *gorm.DB
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. This service only reads products; writes happen
// through the store's admin tooling directly against the database.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	URL         string    `gorm:"type:varchar(1024)" json:"url"`
	// Price in minor currency units (cents).
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

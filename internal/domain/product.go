package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is reference data owned by the master-data subsystem; the engine
// only reads it.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Unit      string    `gorm:"column:unit;type:varchar(32);not null;default:''" json:"unit"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// School is reference data owned by the master-data subsystem; the engine
// only reads it.
type School struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	ReferenceCode string    `gorm:"column:reference_code;type:varchar(64);not null;default:''" json:"reference_code"`
	Route         string    `gorm:"column:route;type:varchar(255);not null;default:''" json:"route"`
	Active        bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (School) TableName() string { return "school" }

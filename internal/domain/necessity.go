package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Necessity is a requested product quantity for a school on a consumption
// date. The product and school references are denormalized at creation time.
// Re-submitting the same natural key updates the row in place.
type Necessity struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RequesterEmail string    `gorm:"column:requester_email;type:varchar(255);not null;uniqueIndex:uniq_necessity_key" json:"requester_email"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName    string    `gorm:"column:product_name;type:varchar(255);not null;uniqueIndex:uniq_necessity_key" json:"product_name"`
	ProductUnit    string    `gorm:"column:product_unit;type:varchar(32);not null;default:''" json:"product_unit"`
	SchoolID       uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`
	SchoolName     string    `gorm:"column:school_name;type:varchar(255);not null;uniqueIndex:uniq_necessity_key" json:"school_name"`
	ReferenceCode  string    `gorm:"column:reference_code;type:varchar(64);not null;default:''" json:"reference_code"`

	Adjustment      decimal.Decimal `gorm:"column:adjustment;type:numeric(12,3);not null;default:0" json:"adjustment"`
	ConsumptionDate time.Time       `gorm:"column:consumption_date;type:date;not null;uniqueIndex:uniq_necessity_key" json:"consumption_date"`
	SupplyWeek      *string         `gorm:"column:supply_week;type:varchar(64)" json:"supply_week,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Necessity) TableName() string { return "necessity" }

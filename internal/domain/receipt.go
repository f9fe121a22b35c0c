package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryReceipt records a shipment arrival at a school. Status is derived
// from the receipt weekday and the category rules when the row is written.
type DeliveryReceipt struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SchoolID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"school_id"`
	ReceiptDate time.Time        `gorm:"column:receipt_date;type:date;not null;index" json:"receipt_date"`
	Category    DeliveryCategory `gorm:"column:category;type:varchar(16);not null" json:"category"`
	Status      DeliveryStatus   `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Notes       string           `gorm:"column:notes;type:text;not null;default:''" json:"notes,omitempty"`
	CreatedAt   time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (DeliveryReceipt) TableName() string { return "delivery_receipt" }

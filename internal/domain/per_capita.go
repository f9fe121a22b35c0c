package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PerCapitaFactor holds the five per-meal-type nutritional multipliers for a
// product. Rows are soft-deleted (Active=false); at most one active row may
// exist per product.
type PerCapitaFactor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	MorningSnack   decimal.Decimal `gorm:"column:morning_snack;type:numeric(12,4);not null;default:0" json:"morning_snack"`
	Lunch          decimal.Decimal `gorm:"column:lunch;type:numeric(12,4);not null;default:0" json:"lunch"`
	AfternoonSnack decimal.Decimal `gorm:"column:afternoon_snack;type:numeric(12,4);not null;default:0" json:"afternoon_snack"`
	Partial        decimal.Decimal `gorm:"column:partial;type:numeric(12,4);not null;default:0" json:"partial"`
	EJA            decimal.Decimal `gorm:"column:eja;type:numeric(12,4);not null;default:0" json:"eja"`

	Active    bool      `gorm:"column:active;not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PerCapitaFactor) TableName() string { return "per_capita_factor" }

// Factor returns the multiplier for a meal type.
func (f *PerCapitaFactor) Factor(m MealType) decimal.Decimal {
	switch m {
	case MealMorningSnack:
		return f.MorningSnack
	case MealLunch:
		return f.Lunch
	case MealAfternoonSnack:
		return f.AfternoonSnack
	case MealPartial:
		return f.Partial
	case MealEJA:
		return f.EJA
	}
	return decimal.Zero
}

// SetFactor assigns the multiplier for a meal type.
func (f *PerCapitaFactor) SetFactor(m MealType, v decimal.Decimal) {
	switch m {
	case MealMorningSnack:
		f.MorningSnack = v
	case MealLunch:
		f.Lunch = v
	case MealAfternoonSnack:
		f.AfternoonSnack = v
	case MealPartial:
		f.Partial = v
	case MealEJA:
		f.EJA = v
	}
}

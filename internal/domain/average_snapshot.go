package domain

import (
	"time"

	"github.com/google/uuid"
)

// AverageSnapshot is the denormalized rolling-average row per
// (school, nutritionist). Created on first reconciliation, mutated in place
// afterwards; no history is kept.
type AverageSnapshot struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SchoolID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_snapshot_school_nutritionist" json:"school_id"`
	NutritionistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_snapshot_school_nutritionist" json:"nutritionist_id"`

	MorningSnackAvg   int `gorm:"column:morning_snack_avg;not null;default:0" json:"morning_snack_avg"`
	LunchAvg          int `gorm:"column:lunch_avg;not null;default:0" json:"lunch_avg"`
	AfternoonSnackAvg int `gorm:"column:afternoon_snack_avg;not null;default:0" json:"afternoon_snack_avg"`
	PartialAvg        int `gorm:"column:partial_avg;not null;default:0" json:"partial_avg"`
	EJAAvg            int `gorm:"column:eja_avg;not null;default:0" json:"eja_avg"`

	// CalculatedAutomatically is false after a manual edit and true after an
	// automatic recompute. Last writer wins.
	CalculatedAutomatically bool      `gorm:"column:calculated_automatically;not null;default:true" json:"calculated_automatically"`
	SampleCount             int       `gorm:"column:sample_count;not null;default:0" json:"sample_count"`
	ComputedAt              time.Time `gorm:"column:computed_at;not null;default:now()" json:"computed_at"`
	CreatedAt               time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (AverageSnapshot) TableName() string { return "average_snapshot" }

// Average returns the stored average for a meal type.
func (s *AverageSnapshot) Average(m MealType) int {
	switch m {
	case MealMorningSnack:
		return s.MorningSnackAvg
	case MealLunch:
		return s.LunchAvg
	case MealAfternoonSnack:
		return s.AfternoonSnackAvg
	case MealPartial:
		return s.PartialAvg
	case MealEJA:
		return s.EJAAvg
	}
	return 0
}

// SetAverage assigns the stored average for a meal type.
func (s *AverageSnapshot) SetAverage(m MealType, v int) {
	switch m {
	case MealMorningSnack:
		s.MorningSnackAvg = v
	case MealLunch:
		s.LunchAvg = v
	case MealAfternoonSnack:
		s.AfternoonSnackAvg = v
	case MealPartial:
		s.PartialAvg = v
	case MealEJA:
		s.EJAAvg = v
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord is one logged consumption sample. Several nutritionists may log
// for the same school/date/meal type; each row counts as an independent sample
// when averaging.
type DailyRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SchoolID       uuid.UUID `gorm:"type:uuid;not null;index:idx_daily_record_school_date" json:"school_id"`
	NutritionistID uuid.UUID `gorm:"type:uuid;not null;index" json:"nutritionist_id"`
	Date           time.Time `gorm:"type:date;not null;index:idx_daily_record_school_date" json:"date"`
	MealType       MealType  `gorm:"column:meal_type;type:varchar(32);not null" json:"meal_type"`
	Value          int       `gorm:"column:value;not null" json:"value"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (DailyRecord) TableName() string { return "daily_record" }

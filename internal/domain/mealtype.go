package domain

// MealType is one of the five consumption categories a school tracks per day.
// The string values match the original data set and are stored as-is.
type MealType string

const (
	MealMorningSnack   MealType = "lanche_manha"
	MealLunch          MealType = "almoco"
	MealAfternoonSnack MealType = "lanche_tarde"
	MealPartial        MealType = "parcial"
	MealEJA            MealType = "eja"
)

// AllMealTypes returns the closed set in display order. Every per-meal-type
// output enumerates all five, defaulting absent ones to zero.
func AllMealTypes() []MealType {
	return []MealType{
		MealMorningSnack,
		MealLunch,
		MealAfternoonSnack,
		MealPartial,
		MealEJA,
	}
}

func (m MealType) Valid() bool {
	switch m {
	case MealMorningSnack, MealLunch, MealAfternoonSnack, MealPartial, MealEJA:
		return true
	}
	return false
}

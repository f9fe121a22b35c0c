package domain

// DeliveryCategory classifies a shipment and determines its expected
// delivery weekdays. Closed set; unknown categories are rejected at the
// boundary instead of defaulting.
type DeliveryCategory string

const (
	CategoryHorti      DeliveryCategory = "HORTI"
	CategoryBread      DeliveryCategory = "PAO"
	CategoryPerishable DeliveryCategory = "PERECIVEIS"
	CategoryDryBase    DeliveryCategory = "BASE"
	CategoryCleaning   DeliveryCategory = "LIMP"
)

func (c DeliveryCategory) Valid() bool {
	switch c {
	case CategoryHorti, CategoryBread, CategoryPerishable, CategoryDryBase, CategoryCleaning:
		return true
	}
	return false
}

// DeliveryStatus is derived once at write time from the receipt date and
// the category's weekday rules, never recomputed later.
type DeliveryStatus string

const (
	DeliveryOnTime DeliveryStatus = "on_time"
	DeliveryEarly  DeliveryStatus = "early"
	DeliveryLate   DeliveryStatus = "late"
)

package db

import (
	types "github.com/nutriserv/supply-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Reference data (read side)
		// =========================
		&types.School{},
		&types.Product{},
		&types.PerCapitaFactor{},

		// =========================
		// Consumption intake
		// =========================
		&types.DailyRecord{},

		// =========================
		// Engine-owned state
		// =========================
		&types.AverageSnapshot{},
		&types.Necessity{},
		&types.DeliveryReceipt{},
	)
}

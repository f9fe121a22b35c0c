package app

import (
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/pkg/logger"
	"github.com/nutriserv/supply-backend/internal/services"
)

type Services struct {
	Record    services.RecordService
	Average   services.AverageService
	Necessity services.NecessityService
	Delivery  services.DeliveryService
	PerCapita services.PerCapitaService
	Export    services.ExportService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Record:    services.NewRecordService(db, log, r.DailyRecord, r.School),
		Average:   services.NewAverageService(db, log, cfg.AverageWindowDays, r.DailyRecord, r.Snapshot),
		Necessity: services.NewNecessityService(db, log, r.Necessity, r.School, r.Product, r.PerCapita, r.Snapshot),
		Delivery:  services.NewDeliveryService(db, log, r.Receipt, r.School),
		PerCapita: services.NewPerCapitaService(db, log, r.PerCapita, r.Product),
		Export:    services.NewExportService(db, log, r.Necessity, r.School),
	}
}

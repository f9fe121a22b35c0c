package app

import (
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/averages"
	"github.com/nutriserv/supply-backend/internal/data/repos/necessities"
	"github.com/nutriserv/supply-backend/internal/data/repos/percapita"
	"github.com/nutriserv/supply-backend/internal/data/repos/products"
	"github.com/nutriserv/supply-backend/internal/data/repos/receipts"
	"github.com/nutriserv/supply-backend/internal/data/repos/records"
	"github.com/nutriserv/supply-backend/internal/data/repos/schools"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type Repos struct {
	DailyRecord records.DailyRecordRepo
	Snapshot    averages.SnapshotRepo
	Necessity   necessities.NecessityRepo
	PerCapita   percapita.PerCapitaRepo
	Receipt     receipts.ReceiptRepo
	School      schools.SchoolRepo
	Product     products.ProductRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DailyRecord: records.NewDailyRecordRepo(db, log),
		Snapshot:    averages.NewSnapshotRepo(db, log),
		Necessity:   necessities.NewNecessityRepo(db, log),
		PerCapita:   percapita.NewPerCapitaRepo(db, log),
		Receipt:     receipts.NewReceiptRepo(db, log),
		School:      schools.NewSchoolRepo(db, log),
		Product:     products.NewProductRepo(db, log),
	}
}

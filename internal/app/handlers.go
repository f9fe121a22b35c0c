package app

import (
	httpH "github.com/nutriserv/supply-backend/internal/http/handlers"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type Handlers struct {
	Record    *httpH.RecordHandler
	Average   *httpH.AverageHandler
	Necessity *httpH.NecessityHandler
	Receipt   *httpH.ReceiptHandler
	PerCapita *httpH.PerCapitaHandler
	Health    *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Record:    httpH.NewRecordHandler(s.Record),
		Average:   httpH.NewAverageHandler(s.Average),
		Necessity: httpH.NewNecessityHandler(s.Necessity, s.Export),
		Receipt:   httpH.NewReceiptHandler(s.Delivery),
		PerCapita: httpH.NewPerCapitaHandler(s.PerCapita),
		Health:    httpH.NewHealthHandler(),
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/nutriserv/supply-backend/internal/http/handlers"
	httpMW "github.com/nutriserv/supply-backend/internal/http/middleware"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	RecordHandler    *httpH.RecordHandler
	AverageHandler   *httpH.AverageHandler
	NecessityHandler *httpH.NecessityHandler
	ReceiptHandler   *httpH.ReceiptHandler
	PerCapitaHandler *httpH.PerCapitaHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Consumption intake
		if cfg.RecordHandler != nil {
			api.POST("/records", cfg.RecordHandler.Log)
		}

		// Averages
		if cfg.AverageHandler != nil {
			api.POST("/averages/compute", cfg.AverageHandler.Compute)
			api.POST("/averages/recompute", cfg.AverageHandler.Recompute)
			api.PUT("/averages/manual", cfg.AverageHandler.SetManual)
			api.GET("/averages/:school_id/:nutritionist_id", cfg.AverageHandler.GetSnapshot)
		}

		// Necessities
		if cfg.NecessityHandler != nil {
			api.POST("/necessities/project", cfg.NecessityHandler.Project)
			api.GET("/necessities", cfg.NecessityHandler.List)
			api.GET("/necessities/export", cfg.NecessityHandler.Export)
		}

		// Delivery receipts
		if cfg.ReceiptHandler != nil {
			api.POST("/receipts", cfg.ReceiptHandler.Record)
			api.GET("/receipts", cfg.ReceiptHandler.List)
			api.GET("/receipts/classify", cfg.ReceiptHandler.Classify)
		}

		// Per-capita profiles
		if cfg.PerCapitaHandler != nil {
			api.POST("/per-capita", cfg.PerCapitaHandler.Create)
			api.PUT("/per-capita/:id", cfg.PerCapitaHandler.Update)
			api.DELETE("/per-capita/:id", cfg.PerCapitaHandler.Deactivate)
			api.POST("/per-capita/:id/reactivate", cfg.PerCapitaHandler.Reactivate)
			api.GET("/per-capita/:product_id", cfg.PerCapitaHandler.Lookup)
		}
	}

	return r
}

package app

import (
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
	"github.com/nutriserv/supply-backend/internal/utils"
)

type Config struct {
	HTTPPort          string
	AverageWindowDays int
}

func LoadConfig(log *logger.Logger) Config {
	httpPort := utils.GetEnv("HTTP_PORT", "8080", log)
	averageWindowDays := utils.GetEnvAsInt("AVERAGE_WINDOW_DAYS", 20, log)
	return Config{
		HTTPPort:          httpPort,
		AverageWindowDays: averageWindowDays,
	}
}

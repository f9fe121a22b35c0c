package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nutriserv/supply-backend/internal/app"
)

func main() {
	// .env is optional; container deployments inject the environment.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	addr := ":" + a.Cfg.HTTPPort
	a.Log.Info("Starting HTTP server", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("HTTP server stopped", "error", err)
		a.Close()
		os.Exit(1)
	}
}

package main

import (
	stdlog "log"

	"github.com/joho/godotenv"

	"facture/cmd"
	"facture/internal/config"
	"facture/internal/logger"
)

func main() {
	// Load environment variables; a missing .env file is fine.
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("Note: no .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		stdlog.Printf("Warning: could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			stdlog.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	cmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"health-screen/internal/config"
	"health-screen/internal/database"
	"health-screen/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Running migrations",
		zap.String("driver", cfg.DB.Driver),
		zap.String("path", cfg.DB.MigrationsPath),
	)
	if err := database.RunMigrations(cfg); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Migrations completed")
}

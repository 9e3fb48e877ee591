package main

import (
	"context"
	"flag"
	"log"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/database"
	"github.com/alexivanou/meteo-widget/internal/repository"
	"github.com/alexivanou/meteo-widget/internal/seeder"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	file := flag.String("file", cfg.Seeder.File, "Favorites file: plain names, GeoNames rows, or a zip of either")
	flag.Parse()

	if cfg.DB.IsMemory() {
		logger.Warn("In-memory storage does not outlive this process; use cmd/app auto-seeding instead")
	}

	ctx := context.Background()
	storage, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	logger.Info("Connected to storage", zap.String("type", string(cfg.DB.Type)))
	logger.Info("Starting favorites import...", zap.String("file", *file))

	repos := repository.NewFromStorage(storage, cfg.DB.Type)
	added, err := seeder.Import(ctx, seeder.NewParser(cfg.Seeder), repos.Favorites, *file)
	if err != nil {
		logger.Fatal("Failed to import favorites", zap.Error(err))
	}

	logger.Info("Favorites import completed successfully!", zap.Int("added", added))
}

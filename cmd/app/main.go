package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexivanou/meteo-widget/internal/api"
	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/database"
	"github.com/alexivanou/meteo-widget/internal/repository"
	"github.com/alexivanou/meteo-widget/internal/seeder"
	"github.com/alexivanou/meteo-widget/internal/service"
	"github.com/alexivanou/meteo-widget/internal/stats"
	"github.com/alexivanou/meteo-widget/internal/view"
	"github.com/alexivanou/meteo-widget/internal/weather"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Weather.Validate(); err != nil {
		logger.Fatal("Invalid weather configuration", zap.Error(err))
	}

	ctx := context.Background()
	storage, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()
	logger.Info("Connected to storage", zap.String("type", string(cfg.DB.Type)))

	repos := repository.NewFromStorage(storage, cfg.DB.Type)

	existing, err := repos.Favorites.Load(ctx)
	if err != nil {
		logger.Warn("Failed to check stored favorites", zap.Error(err))
	} else if len(existing) == 0 {
		autoSeedFavorites(ctx, repos, cfg, logger)
	}

	client := weather.NewClient(cfg.Weather)
	widget, err := service.NewWidget(ctx, client, repos.Favorites, logger)
	if err != nil {
		logger.Fatal("Failed to initialize widget", zap.Error(err))
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load page template", zap.Error(err))
	}

	statsCollector := stats.NewCollector(storage.SQL, cfg.DB, widget)
	router := api.NewRouter(widget, statsCollector, renderer, cfg.Weather.IconBaseURL, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Weather.Timeout*2 + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg config.ServerConfig) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// autoSeedFavorites fills an empty store from the seeder file when one exists
func autoSeedFavorites(ctx context.Context, repos *repository.Container, cfg *config.Config, logger *zap.Logger) {
	if _, err := os.Stat(cfg.Seeder.File); err != nil {
		return
	}

	logger.Info("No favorites stored, importing seed file...", zap.String("file", cfg.Seeder.File))
	added, err := seeder.Import(ctx, seeder.NewParser(cfg.Seeder), repos.Favorites, cfg.Seeder.File)
	if err != nil {
		logger.Warn("Failed to import seed file", zap.Error(err))
		return
	}
	logger.Info("Favorites seeded", zap.Int("added", added))
}

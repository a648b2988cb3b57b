package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"ladrillo/server/config"
	"ladrillo/server/internal/api"
	"ladrillo/server/internal/currency"
	"ladrillo/server/internal/database"
	"ladrillo/server/internal/market"
	"ladrillo/server/internal/scheduler"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := config.LoadReferenceOverrides(cfg.Market.ReferenceOverridePath); err != nil {
		logger.WithError(err).Fatal("Failed to load market reference overrides")
	}

	db, err := database.Open(cfg.Database.Path, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}

	fallback, err := currency.NewSnapshot(
		cfg.Rates.FallbackUFCLP,
		cfg.Rates.FallbackEURCLP,
		cfg.Rates.FallbackUSDCLP,
		time.Now(),
	)
	if err != nil {
		logger.WithError(err).Fatal("Invalid fallback rates")
	}

	rates := currency.NewService(logger, currency.ServiceOptions{
		BaseURL:  cfg.Rates.BaseURL,
		Timeout:  time.Duration(cfg.Rates.TimeoutSeconds) * time.Second,
		CacheTTL: time.Duration(cfg.Rates.CacheTTLMinutes) * time.Minute,
		Store:    db,
		Fallback: &fallback,
	})

	sched := scheduler.New(rates, logger)
	if err := sched.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start scheduler")
	}
	defer sched.Stop()

	handler := api.NewHandler(rates, market.NewIntelligence(), db, logger)
	router := api.NewRouter(handler)

	logger.WithField("port", cfg.Server.Port).Info("Starting server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}

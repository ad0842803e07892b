package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/EpicMandM/booking-admin-panel/internal/app"
	"github.com/EpicMandM/booking-admin-panel/internal/config"
	"github.com/EpicMandM/booking-admin-panel/internal/logger"
	"github.com/EpicMandM/booking-admin-panel/internal/service"
)

type App struct {
	ctx        context.Context
	logger     *logger.Logger
	infraCfg   *config.Config
	featureCfg *service.FeatureConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &App{
		ctx:    ctx,
		logger: logger.New(),
	}

	if err := a.run(); err != nil {
		a.logger.Error("Application error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func (a *App) run() error {
	if err := a.initialize(); err != nil {
		return err
	}

	server := app.New(a.infraCfg, a.featureCfg, a.logger)
	if err := server.Initialize(a.ctx); err != nil {
		a.logger.Error("Failed to initialize admin panel", logger.Error(err))
		return err
	}

	a.logger.Info("Starting admin panel", logger.Action("startup"), logger.F("ADDR", a.infraCfg.ListenAddr))
	return server.Run(a.ctx)
}

func (a *App) initialize() error {
	envPath := getEnvOrDefault("ENV_FILE", ".env")
	infraCfg, err := config.LoadWithFile(envPath)
	if err != nil {
		a.logger.Error("Failed to load infrastructure config", logger.Error(err), logger.F("path", envPath))
		return err
	}
	a.infraCfg = infraCfg

	featureCfg, err := loadFeatureConfig(infraCfg.PanelConfigPath)
	if err != nil {
		a.logger.Error("Failed to load feature config", logger.Error(err), logger.F("path", infraCfg.PanelConfigPath))
		return err
	}
	if featureCfg == nil {
		a.logger.Info("Feature config not found, using defaults", logger.F("path", infraCfg.PanelConfigPath))
		featureCfg = service.DefaultFeatureConfig()
	}
	a.featureCfg = featureCfg
	return nil
}

// loadFeatureConfig returns nil without error when the file does not exist.
func loadFeatureConfig(path string) (*service.FeatureConfig, error) {
	cfg, err := service.LoadFeatureConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

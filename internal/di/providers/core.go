// Package providers contains dependency injection providers for the PageTurn server.
package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/pageturnapp/pageturn-server/internal/config"
	"github.com/pageturnapp/pageturn-server/internal/logger"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
const shutdownTimeout = 30 * time.Second

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting PageTurn Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"database_path", cfg.Database.Path,
	)

	return log, nil
}

// ProvideValidator provides the shared request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the process environment. Each envFilePath is searched
// upwards from the working directory and the first one found is loaded first; with
// no paths the default .env is tried.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv(logger)
	}

	for _, path := range envFilePath {
		foundPath, err := findEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("Loaded environment file", "path", foundPath)
		return loadFromEnv(logger)
	}

	logger.Warn("No environment file found, using process environment only", "paths", envFilePath)
	return loadFromEnv(logger)
}

func loadFromEnv(logger *slog.Logger) (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"jwt_secret", maskValue(cfg.Jwt.Secret),
		"fee_source", cfg.Fee.Source,
		"event_bus", cfg.EventBus.Driver,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func (c *App) validate() error {
	switch c.Fee.Source {
	case "env", "database":
	default:
		return fmt.Errorf("load config: FEE_SOURCE must be env or database, got %q", c.Fee.Source)
	}
	switch c.EventBus.Driver {
	case "memory", "kafka", "redis", "none":
	default:
		return fmt.Errorf("load config: EVENT_BUS_DRIVER must be memory, kafka, redis or none, got %q", c.EventBus.Driver)
	}
	return nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}

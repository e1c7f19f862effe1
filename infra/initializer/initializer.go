package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/infra"
	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/infra/metrics"
	infra_repository "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/fee"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// InitializeDependencies connects to the database, applies migrations and builds
// the fee policy, event bus and metrics selected by cfg.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	logger := setupLogger(cfg.Log)
	deps = &app.Deps{Logger: logger}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.Migrate {
		if err := infra.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}
	deps.Uow = infra_repository.NewUoW(db)

	deps.Fees, err = initFeePolicy(cfg.Fee, db)
	if err != nil {
		return nil, err
	}

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.EventBus = bus
	if c, ok := bus.(interface{ Close() error }); ok {
		deps.Closers = append(deps.Closers, c)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB, err := db.DB(); err == nil {
		reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, "ledger"))
		deps.Closers = append(deps.Closers, sqlDB)
	}
	observer, err := metrics.NewObserver(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	deps.Observer = observer
	deps.Gatherer = reg

	return deps, nil
}

// initFeePolicy reads fees from the process environment or from the fee_settings
// table. Either way the values are re-read on every engine call.
func initFeePolicy(cfg *config.Fee, db *gorm.DB) (fee.Policy, error) {
	source := "env"
	if cfg != nil {
		source = cfg.Source
	}
	switch source {
	case "env":
		return fee.NewConfigPolicy(fee.EnvSource{}), nil
	case "database":
		if db == nil {
			return nil, fmt.Errorf("fee source %q needs a database", source)
		}
		return fee.NewConfigPolicy(infra_repository.NewFeeSettingsSource(db)), nil
	default:
		return nil, fmt.Errorf("unsupported fee source %q", source)
	}
}

// initEventBus builds the bus named by EVENT_BUS_DRIVER. An unreachable Redis or
// Kafka falls back to the in-memory bus; events are notifications, so the ledger
// keeps serving without them.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	driver := "memory"
	if cfg.EventBus != nil && cfg.EventBus.Driver != "" {
		driver = cfg.EventBus.Driver
	}

	switch driver {
	case "memory", "none":
		return infra_eventbus.NewWithMemory(logger), nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, fmt.Errorf("event bus driver redis requires REDIS_URL")
		}
		bus, err := infra_eventbus.NewWithRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis event bus unavailable, using memory bus", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	case "kafka":
		if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 {
			return nil, fmt.Errorf("event bus driver kafka requires KAFKA_BROKERS")
		}
		bus, err := infra_eventbus.NewWithKafka(cfg.Kafka, logger)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, using memory bus", "error", err)
			return infra_eventbus.NewWithMemory(logger), nil
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unsupported event bus driver %q", driver)
	}
}

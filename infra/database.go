package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the postgres pool and checks that the server answers within
// ConnectTimeout. SQL statements are logged in development only.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	}
	if cnf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	}
	if cnf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)
	}

	if cnf.ConnectTimeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cnf.ConnectTimeout)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database unreachable: %w", err)
		}
	}

	return connection, nil
}

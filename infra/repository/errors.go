package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes reported when two transactions collide.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
)

// MapGormErrorToDomain converts database errors to the store sentinels in the domain
// package. The driver error stays in the chain for logging. Errors with no mapping
// are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
			return fmt.Errorf("%w: %w", domain.ErrConcurrentConflict, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(row).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do share the transaction; repositories obtained
// outside it run against the plain connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction. The transaction commits when fn returns nil
// and rolls back when it returns an error or panics. Calling Do on a UoW that is
// already inside a transaction joins it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(&UoW{db: u.db, tx: tx}); err != nil {
			return err
		}
		// Commit nothing for a call that was abandoned.
		return ctx.Err()
	})
}

type txKey struct{}

// BindContext returns ctx carrying the open transaction. Outside Do it returns ctx
// unchanged.
func (u *UoW) BindContext(ctx context.Context) context.Context {
	if u.tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, u.tx)
}

// sessionFrom returns the transaction bound to ctx by BindContext, or db.
func sessionFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// StatementRepository returns a statement repository bound to the current session.
func (u *UoW) StatementRepository() (repository.StatementRepository, error) {
	return NewStatementRepository(u.session()), nil
}

var (
	_ repository.UnitOfWork    = (*UoW)(nil)
	_ repository.ContextBinder = (*UoW)(nil)
)

package repository

import (
	"context"
)

// UnitOfWork demarcates an atomic scope over the account and statement stores.
//
// Do begins the scope, runs fn and commits when fn returns nil. Any error returned
// by fn, a panic, or a context cancelled before commit rolls back every write issued
// through the scoped repositories. Repositories obtained from the UnitOfWork passed to
// fn are bound to the scope; those obtained outside Do read committed state.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	StatementRepository() (StatementRepository, error)
}

// ContextBinder is implemented by units of work that can carry their open scope in a
// context, so collaborators outside the repositories (such as a database fee source)
// run inside the same transaction.
type ContextBinder interface {
	BindContext(ctx context.Context) context.Context
}

// ScopeContext returns ctx bound to uow's scope when uow supports it, and ctx
// unchanged otherwise.
func ScopeContext(ctx context.Context, uow UnitOfWork) context.Context {
	if b, ok := uow.(ContextBinder); ok {
		return b.BindContext(ctx)
	}
	return ctx
}

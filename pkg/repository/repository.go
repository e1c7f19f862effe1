package repository

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// AccountRepository holds current balances keyed by account number.
type AccountRepository interface {
	// GetBalance returns the balance, or nil when the account does not exist.
	GetBalance(ctx context.Context, accountNumber string) (*decimal.Decimal, error)
	// GetBalanceForUpdate is GetBalance with a lock held on the account until the
	// enclosing unit of work ends.
	GetBalanceForUpdate(ctx context.Context, accountNumber string) (*decimal.Decimal, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error
	List(ctx context.Context) ([]account.Account, error)
	// Create opens an account. Used for seeding; the engine never calls it.
	Create(ctx context.Context, acct account.Account) error
}

// StatementRepository is the append-only statement trail.
type StatementRepository interface {
	Save(
		ctx context.Context,
		accountNumber string,
		timestamp time.Time,
		description string,
		amount decimal.Decimal,
		resultingBalance decimal.Decimal,
	) error
	// ListByAccount returns the account's entries in no particular order.
	ListByAccount(ctx context.Context, accountNumber string) ([]account.StatementEntry, error)
}

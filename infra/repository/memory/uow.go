package memory

import (
	"context"
	"sort"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// UoW implements repository.UnitOfWork over a Store.
type UoW struct {
	store *Store
	sc    *scope
}

// NewUoW returns a unit of work over store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do runs fn in a scope. Writes are buffered and applied on commit; locks taken by
// locking reads are released when the scope ends, whatever the outcome.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) (err error) {
	if u.sc != nil {
		return fn(u)
	}
	u.store.mu.Lock()
	hook := u.store.hook
	u.store.mu.Unlock()

	sc := newScope(hook)
	defer u.store.release(sc)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(&UoW{store: u.store, sc: sc}); err != nil {
		return err
	}
	// An abandoned call must not commit.
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.commit(sc)
	return nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepository{store: u.store, sc: u.sc}, nil
}

// StatementRepository implements repository.UnitOfWork.
func (u *UoW) StatementRepository() (repository.StatementRepository, error) {
	return &statementRepository{store: u.store, sc: u.sc}, nil
}

type accountRepository struct {
	store *Store
	sc    *scope
}

func (r *accountRepository) GetBalance(_ context.Context, accountNumber string) (*decimal.Decimal, error) {
	if r.sc != nil {
		if b, ok := r.sc.balances[accountNumber]; ok {
			return &b, nil
		}
	}
	b, ok := r.store.Balance(accountNumber)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *accountRepository) GetBalanceForUpdate(ctx context.Context, accountNumber string) (*decimal.Decimal, error) {
	if r.sc != nil {
		if err := r.store.acquire(ctx, r.sc, accountNumber); err != nil {
			return nil, err
		}
	}
	return r.GetBalance(ctx, accountNumber)
}

func (r *accountRepository) UpdateBalance(_ context.Context, accountNumber string, balance decimal.Decimal) error {
	if r.sc == nil {
		r.store.Seed(accountNumber, balance)
		return nil
	}
	if err := r.sc.write("update_balance"); err != nil {
		return err
	}
	r.sc.balances[accountNumber] = balance
	return nil
}

func (r *accountRepository) List(_ context.Context) ([]account.Account, error) {
	r.store.mu.Lock()
	merged := make(map[string]decimal.Decimal, len(r.store.balances))
	for n, b := range r.store.balances {
		merged[n] = b
	}
	r.store.mu.Unlock()
	if r.sc != nil {
		for n, b := range r.sc.balances {
			merged[n] = b
		}
	}

	out := make([]account.Account, 0, len(merged))
	for n, b := range merged {
		out = append(out, account.Account{Number: n, Balance: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *accountRepository) Create(ctx context.Context, acct account.Account) error {
	existing, err := r.GetBalance(ctx, acct.Number)
	if err != nil {
		return err
	}
	if existing != nil {
		return alreadyExists(acct.Number)
	}
	if r.sc == nil {
		r.store.Seed(acct.Number, acct.Balance)
		return nil
	}
	if err := r.sc.write("create_account"); err != nil {
		return err
	}
	r.sc.created[acct.Number] = true
	r.sc.balances[acct.Number] = acct.Balance
	return nil
}

type statementRepository struct {
	store *Store
	sc    *scope
}

func (r *statementRepository) Save(
	_ context.Context,
	accountNumber string,
	timestamp time.Time,
	description string,
	amount decimal.Decimal,
	resultingBalance decimal.Decimal,
) error {
	e := account.StatementEntry{
		AccountNumber:    accountNumber,
		Timestamp:        timestamp.UTC(),
		Description:      description,
		Amount:           amount,
		ResultingBalance: resultingBalance,
	}
	if r.sc == nil {
		r.store.commit(&scope{entries: []account.StatementEntry{e}})
		return nil
	}
	if err := r.sc.write("save_statement"); err != nil {
		return err
	}
	r.sc.entries = append(r.sc.entries, e)
	return nil
}

func (r *statementRepository) ListByAccount(_ context.Context, accountNumber string) ([]account.StatementEntry, error) {
	out := r.store.Entries(accountNumber)
	if r.sc != nil {
		for _, e := range r.sc.entries {
			if e.AccountNumber == accountNumber {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

var (
	_ repository.UnitOfWork          = (*UoW)(nil)
	_ repository.AccountRepository   = (*accountRepository)(nil)
	_ repository.StatementRepository = (*statementRepository)(nil)
)

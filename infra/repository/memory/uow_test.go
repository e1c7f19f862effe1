package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_CommitAppliesWrites(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		require.NoError(t, err)
		statements, err := uow.StatementRepository()
		require.NoError(t, err)

		require.NoError(t, accounts.UpdateBalance(context.Background(), "A1", decimal.NewFromInt(70)))
		require.NoError(t, statements.Save(context.Background(), "A1", ts, "Withdrawal",
			decimal.NewFromInt(-30), decimal.NewFromInt(70)))

		// pending writes are visible inside the scope only
		b, err := accounts.GetBalance(context.Background(), "A1")
		require.NoError(t, err)
		assert.True(t, b.Equal(decimal.NewFromInt(70)))
		committed, _ := store.Balance("A1")
		assert.True(t, committed.Equal(decimal.NewFromInt(100)))
		return nil
	})
	require.NoError(t, err)

	b, ok := store.Balance("A1")
	require.True(t, ok)
	assert.True(t, b.Equal(decimal.NewFromInt(70)))
	entries := store.Entries("A1")
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Sequence)
	assert.Equal(t, ts, entries[0].Timestamp)
}

func TestUoW_ErrorDiscardsWrites(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)
	boom := errors.New("boom")

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		statements, _ := uow.StatementRepository()
		_ = accounts.UpdateBalance(context.Background(), "A1", decimal.Zero)
		_ = statements.Save(context.Background(), "A1", time.Now(), "x", decimal.NewFromInt(-100), decimal.Zero)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, _ := store.Balance("A1")
	assert.True(t, b.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, store.Entries("A1"))
}

func TestUoW_CancelledContextDoesNotCommit(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)
	ctx, cancel := context.WithCancel(context.Background())

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		require.NoError(t, accounts.UpdateBalance(ctx, "A1", decimal.Zero))
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	b, _ := store.Balance("A1")
	assert.True(t, b.Equal(decimal.NewFromInt(100)))
}

func TestUoW_PanicReleasesLocks(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)

	assert.Panics(t, func() {
		_ = uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
			accounts, _ := uow.AccountRepository()
			_, _ = accounts.GetBalanceForUpdate(context.Background(), "A1")
			panic("handler bug")
		})
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		_, err := accounts.GetBalanceForUpdate(ctx, "A1")
		return err
	})
	assert.NoError(t, err)
}

func TestUoW_LockingReadBlocksUntilScopeEnds(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
			accounts, _ := uow.AccountRepository()
			if _, err := accounts.GetBalanceForUpdate(context.Background(), "A1"); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		_, err := accounts.GetBalanceForUpdate(ctx, "A1")
		return err
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-done)
}

func TestUoW_WriteHookFailsWrite(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	hookErr := errors.New("disk full")
	var ops []string
	store.SetWriteHook(func(op string, n int) error {
		ops = append(ops, op)
		if n == 2 {
			return hookErr
		}
		return nil
	})
	uow := memory.NewUoW(store)

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		statements, _ := uow.StatementRepository()
		if err := accounts.UpdateBalance(context.Background(), "A1", decimal.NewFromInt(50)); err != nil {
			return err
		}
		return statements.Save(context.Background(), "A1", time.Now(), "Withdrawal",
			decimal.NewFromInt(-50), decimal.NewFromInt(50))
	})
	assert.ErrorIs(t, err, hookErr)
	assert.Equal(t, []string{"update_balance", "save_statement"}, ops)

	b, _ := store.Balance("A1")
	assert.True(t, b.Equal(decimal.NewFromInt(100)))
}

func TestAccountRepository_CreateAndList(t *testing.T) {
	store := memory.NewStore()
	uow := memory.NewUoW(store)
	ctx := context.Background()

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		require.NoError(t, accounts.Create(ctx, account.Account{Number: "B2", Balance: decimal.NewFromInt(5)}))
		require.NoError(t, accounts.Create(ctx, account.Account{Number: "A1", Balance: decimal.Zero}))
		return accounts.Create(ctx, account.Account{Number: "A1", Balance: decimal.Zero})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	accounts, _ := uow.AccountRepository()
	list, err := accounts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, accounts.Create(ctx, account.Account{Number: "B2", Balance: decimal.NewFromInt(5)}))
	require.NoError(t, accounts.Create(ctx, account.Account{Number: "A1", Balance: decimal.Zero}))
	list, err = accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A1", list[0].Number)
	assert.Equal(t, "B2", list[1].Number)
}

func TestAccountRepository_MissingAccount(t *testing.T) {
	uow := memory.NewUoW(memory.NewStore())
	accounts, _ := uow.AccountRepository()

	b, err := accounts.GetBalance(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestUoW_MissingAccountsTakeNoLock(t *testing.T) {
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	uow := memory.NewUoW(store)

	for _, n := range []string{"ghost-1", "ghost-2", "ghost-3"} {
		err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
			accounts, _ := uow.AccountRepository()
			b, err := accounts.GetBalanceForUpdate(context.Background(), n)
			assert.Nil(t, b)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, store.LockCount())

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		require.NoError(t, accounts.Create(context.Background(), account.Account{Number: "B2", Balance: decimal.Zero}))
		b, err := accounts.GetBalanceForUpdate(context.Background(), "B2")
		require.NotNil(t, b)
		if err != nil {
			return err
		}
		_, err = accounts.GetBalanceForUpdate(context.Background(), "A1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.LockCount())
}

package ledger_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/fee"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSet struct {
	uow        *mocks.MockUnitOfWork
	accounts   *mocks.MockAccountRepository
	statements *mocks.MockStatementRepository
	policy     *mocks.MockPolicy
	bus        *mocks.MockEventBus
}

func newMockSet(t *testing.T) *mockSet {
	return &mockSet{
		uow:        mocks.NewMockUnitOfWork(t),
		accounts:   mocks.NewMockAccountRepository(t),
		statements: mocks.NewMockStatementRepository(t),
		policy:     mocks.NewMockPolicy(t),
		bus:        mocks.NewMockEventBus(t),
	}
}

func (m *mockSet) service() *ledger.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledger.New(m.uow, m.policy, logger, ledger.WithBus(m.bus))
}

// runScope makes Do run fn against the mocked repositories.
func (m *mockSet) runScope(ret error) {
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			if err := fn(m.uow); err != nil {
				return err
			}
			return ret
		}).Once()
	m.uow.EXPECT().AccountRepository().Return(m.accounts, nil).Maybe()
	m.uow.EXPECT().StatementRepository().Return(m.statements, nil).Maybe()
}

func balancePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func defaultFees() fee.Fees {
	return fee.Fees{WithdrawalFee: withdrawalFee, DepositFeeRate: depositRate, TransferFee: transferFee}
}

func TestValidationTouchesNoStore(t *testing.T) {
	m := newMockSet(t)
	svc := m.service()
	ctx := context.Background()

	requireKind(t, svc.Transfer(ctx, "", "", dec("-5")), domain.KindInvalidArgument, domain.MsgEmptyAccountNumber)
	requireKind(t, svc.Transfer(ctx, "A1", "A1", dec("5")), domain.KindInvalidArgument, domain.MsgEqualAccounts)
	requireKind(t, svc.Deposit(ctx, "A1", dec("0")), domain.KindInvalidArgument, domain.MsgNonPositiveAmount)
	_, err := svc.Withdraw(ctx, "", dec("5"))
	requireKind(t, err, domain.KindInvalidArgument, domain.MsgEmptyAccountNumber)
}

func TestWithdraw_Mocked(t *testing.T) {
	m := newMockSet(t)
	m.runScope(nil)
	m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").Return(balancePtr("100"), nil).Once()
	m.policy.EXPECT().CurrentFees(mock.Anything).Return(defaultFees(), nil).Once()
	m.accounts.EXPECT().UpdateBalance(mock.Anything, "A1", mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(dec("49"))
	})).Return(nil).Once()
	m.statements.EXPECT().Save(mock.Anything, "A1", mock.Anything, account.DescWithdrawal,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(dec("-50")) }),
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(dec("50")) }),
	).Return(nil).Once()
	m.statements.EXPECT().Save(mock.Anything, "A1", mock.Anything, account.DescWithdrawalFee,
		mock.MatchedBy(func(a decimal.Decimal) bool { return a.Equal(dec("-1")) }),
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(dec("49")) }),
	).Return(nil).Once()
	m.bus.EXPECT().Emit(mock.Anything, mock.AnythingOfType("*events.WithdrawalPosted")).Return(nil).Once()

	acct, err := m.service().Withdraw(context.Background(), "A1", dec("50"))
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(dec("49")))
}

func TestEmitFailureDoesNotFailCommittedOperation(t *testing.T) {
	m := newMockSet(t)
	m.runScope(nil)
	m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").Return(balancePtr("10"), nil).Once()
	m.policy.EXPECT().CurrentFees(mock.Anything).Return(defaultFees(), nil).Once()
	m.accounts.EXPECT().UpdateBalance(mock.Anything, "A1", mock.Anything).Return(nil).Once()
	m.statements.EXPECT().Save(mock.Anything, "A1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Twice()
	m.bus.EXPECT().Emit(mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type() == events.EventTypeDepositPosted.String()
	})).Return(errors.New("broker down")).Once()

	require.NoError(t, m.service().Deposit(context.Background(), "A1", dec("5")))
}

func TestStoreErrorsAreClassified(t *testing.T) {
	t.Run("locking read", func(t *testing.T) {
		m := newMockSet(t)
		m.runScope(nil)
		m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").
			Return(nil, errors.New("connection refused")).Once()

		_, err := m.service().Withdraw(context.Background(), "A1", dec("5"))
		requireKind(t, err, domain.KindStoreFailure, domain.MsgStoreFailure)
		assert.NotContains(t, err.Error(), "connection refused")
	})

	t.Run("commit", func(t *testing.T) {
		m := newMockSet(t)
		m.runScope(errors.New("commit failed"))
		m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, mock.Anything).Return(balancePtr("100"), nil).Twice()
		m.policy.EXPECT().CurrentFees(mock.Anything).Return(defaultFees(), nil).Once()
		m.accounts.EXPECT().UpdateBalance(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
		m.statements.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Times(3)

		err := m.service().Transfer(context.Background(), "A1", "B2", dec("5"))
		requireKind(t, err, domain.KindStoreFailure, domain.MsgStoreFailure)
	})

	t.Run("statement write", func(t *testing.T) {
		m := newMockSet(t)
		m.runScope(nil)
		m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").Return(balancePtr("100"), nil).Once()
		m.policy.EXPECT().CurrentFees(mock.Anything).Return(defaultFees(), nil).Once()
		m.accounts.EXPECT().UpdateBalance(mock.Anything, "A1", mock.Anything).Return(nil).Once()
		m.statements.EXPECT().Save(mock.Anything, "A1", mock.Anything, account.DescWithdrawal, mock.Anything, mock.Anything).
			Return(domain.ErrConcurrentConflict).Once()

		_, err := m.service().Withdraw(context.Background(), "A1", dec("5"))
		requireKind(t, err, domain.KindStoreFailure, "")
		assert.ErrorIs(t, err, domain.ErrConcurrentConflict)
	})

	t.Run("statement query", func(t *testing.T) {
		m := newMockSet(t)
		m.uow.EXPECT().StatementRepository().Return(m.statements, nil).Once()
		m.statements.EXPECT().ListByAccount(mock.Anything, "A1").Return(nil, errors.New("timeout")).Once()

		_, err := m.service().GetStatement(context.Background(), "A1")
		requireKind(t, err, domain.KindStoreFailure, domain.MsgStoreFailure)
	})

	t.Run("account listing", func(t *testing.T) {
		m := newMockSet(t)
		m.uow.EXPECT().AccountRepository().Return(nil, errors.New("no session")).Once()

		_, err := m.service().GetAccounts(context.Background())
		requireKind(t, err, domain.KindStoreFailure, domain.MsgStoreFailure)
	})
}

func TestFeePolicyFailureIsStoreFailure(t *testing.T) {
	m := newMockSet(t)
	m.runScope(nil)
	m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").Return(balancePtr("100"), nil).Once()
	m.policy.EXPECT().CurrentFees(mock.Anything).Return(fee.Fees{}, errors.New("settings unreachable")).Once()

	_, err := m.service().Withdraw(context.Background(), "A1", dec("5"))
	requireKind(t, err, domain.KindStoreFailure, domain.MsgFeesUnavailable)
}

func TestScopeCancellationIsUnexpected(t *testing.T) {
	m := newMockSet(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ func(repository.UnitOfWork) error) error {
			<-ctx.Done()
			return ctx.Err()
		}).Once()

	err := m.service().Transfer(ctx, "A1", "B2", dec("5"))
	requireKind(t, err, domain.KindUnexpected, domain.MsgUnexpected)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMissingAccountStopsBeforeFees(t *testing.T) {
	m := newMockSet(t)
	m.runScope(nil)
	m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "A1").Return(balancePtr("100"), nil).Once()
	m.accounts.EXPECT().GetBalanceForUpdate(mock.Anything, "B2").Return(nil, nil).Once()

	err := m.service().Transfer(context.Background(), "B2", "A1", dec("5"))
	requireKind(t, err, domain.KindAccountNotFound, domain.MsgSourceNotFound)
}

// Package ledger provides the transaction engine: it validates money movements,
// applies fees, updates balances and appends the matching statement entries inside
// one unit of work, so that every balance change is reconstructible from its
// statement trail.
//
// Every error returned by the Service is a *domain.Error carrying one of the
// classified kinds.
package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/fee"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Operation names used in logs and metrics.
const (
	OpWithdraw     = "withdraw"
	OpDeposit      = "deposit"
	OpTransfer     = "transfer"
	OpGetStatement = "get_statement"
	OpGetAccounts  = "get_accounts"
)

// Observer is notified once per engine call. err is nil on success.
type Observer interface {
	ObserveOperation(op string, err error, elapsed time.Duration)
}

// Service is the transaction engine. It holds no mutable state of its own; all
// shared state lives behind the unit of work.
type Service struct {
	uow      repository.UnitOfWork
	fees     fee.Policy
	logger   *slog.Logger
	bus      eventbus.Bus
	observer Observer
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock used to timestamp statement entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithBus publishes a posted event after every committed operation.
func WithBus(bus eventbus.Bus) Option {
	return func(s *Service) { s.bus = bus }
}

// WithObserver reports every call to o.
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}

// New creates a Service.
func New(uow repository.UnitOfWork, fees fee.Policy, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		uow:    uow,
		fees:   fees,
		logger: logger.With("component", "ledger"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// getRepositories retrieves the scoped account and statement repositories.
func getRepositories(uow repository.UnitOfWork) (repository.AccountRepository, repository.StatementRepository, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, domain.StoreFailure(err)
	}
	statements, err := uow.StatementRepository()
	if err != nil {
		return nil, nil, domain.StoreFailure(err)
	}
	return accounts, statements, nil
}

// currentFees consults the fee policy once for the running operation. The policy
// reads through uow's context, so a database-backed source joins the scope's
// transaction instead of taking a second connection.
func (s *Service) currentFees(ctx context.Context, uow repository.UnitOfWork) (fee.Fees, error) {
	fees, err := s.fees.CurrentFees(repository.ScopeContext(ctx, uow))
	if err != nil {
		var e *domain.Error
		if errors.As(err, &e) {
			return fee.Fees{}, e
		}
		return fee.Fees{}, domain.FeesUnavailable(err)
	}
	return fees, nil
}

// scopeError classifies an error returned by UnitOfWork.Do. Errors raised inside the
// scope are already classified; anything else came from begin or commit.
func scopeError(err error) error {
	var e *domain.Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.Classify(err)
	}
	return domain.StoreFailure(err)
}

// fail logs err at a level matching its kind. Server-side kinds are logged with
// their full cause; the returned error carries only the fixed message.
func (s *Service) fail(logger *slog.Logger, op string, err error) error {
	kind := domain.KindOf(err)
	if kind.ClientFacing() {
		logger.Info(op+" rejected", "kind", kind.String(), "reason", err.Error())
		return err
	}
	logger.Error(op+" failed", "kind", kind.String(), "error", err, "cause", errors.Unwrap(err))
	return err
}

func (s *Service) observe(op string, started time.Time, err *error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveOperation(op, *err, time.Since(started))
}

// emit publishes a posted event. The operation is already committed, so a
// publishing failure is logged and never reported to the caller.
func (s *Service) emit(ctx context.Context, logger *slog.Logger, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		logger.Warn("event publish failed", "event", evt.Type(), "error", err)
	}
}

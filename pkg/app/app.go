package app

import (
	"io"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/fee"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the infrastructure the application is assembled from.
type Deps struct {
	Uow      repository.UnitOfWork
	Fees     fee.Policy
	EventBus eventbus.Bus
	Observer ledger.Observer
	// Gatherer backs the /metrics endpoint. Nil disables it.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
	// Closers are released by App.Close in reverse order.
	Closers []io.Closer
}

type App struct {
	Deps          *Deps
	Config        *config.App
	LedgerService *ledger.Service
}

func New(deps *Deps, cfg *config.App) *App {
	opts := []ledger.Option{}
	if deps.EventBus != nil {
		opts = append(opts, ledger.WithBus(deps.EventBus))
	}
	if deps.Observer != nil {
		opts = append(opts, ledger.WithObserver(deps.Observer))
	}
	a := &App{
		Deps:          deps,
		Config:        cfg,
		LedgerService: ledger.New(deps.Uow, deps.Fees, deps.Logger, opts...),
	}
	if deps.EventBus != nil {
		SetupBus(deps.EventBus, deps.Logger)
	}
	return a
}

// Close releases every closer, returning the first error.
func (a *App) Close() error {
	var first error
	for i := len(a.Deps.Closers) - 1; i >= 0; i-- {
		if err := a.Deps.Closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

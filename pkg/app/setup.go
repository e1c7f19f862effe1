// Package app assembles the ledger service from its dependencies and registers the
// event handlers that consume posted events.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// SetupBus registers the audit handler for every posted event type.
func SetupBus(bus eventbus.Bus, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	audit := AuditHandler(logger.With("handler", "audit"))
	for _, t := range []events.EventType{
		events.EventTypeWithdrawalPosted,
		events.EventTypeDepositPosted,
		events.EventTypeTransferPosted,
	} {
		bus.Register(t, audit)
	}
}

// AuditHandler writes one structured log line per posted event.
func AuditHandler(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		switch evt := e.(type) {
		case *events.WithdrawalPosted:
			logger.InfoContext(ctx, "withdrawal posted",
				"event_id", evt.ID, "account", evt.AccountNumber,
				"amount", evt.Amount.String(), "fee", evt.Fee.String(), "balance", evt.Balance.String())
		case *events.DepositPosted:
			logger.InfoContext(ctx, "deposit posted",
				"event_id", evt.ID, "account", evt.AccountNumber,
				"amount", evt.Amount.String(), "fee", evt.Fee.String(), "balance", evt.Balance.String())
		case *events.TransferPosted:
			logger.InfoContext(ctx, "transfer posted",
				"event_id", evt.ID, "from", evt.SourceAccount, "to", evt.DestinationAccount,
				"amount", evt.Amount.String(), "fee", evt.Fee.String())
		default:
			logger.WarnContext(ctx, "unexpected event", "type", e.Type())
		}
		return nil
	}
}

package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/infra/repository/memory"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/fee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNew_WiresServiceAndAuditHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	store := memory.NewStore()
	store.Seed("A1", decimal.NewFromInt(100))
	bus := infra_eventbus.NewWithMemory(logger, infra_eventbus.WithRecording())

	a := New(&Deps{
		Uow:      memory.NewUoW(store),
		Fees:     fee.Static{WithdrawalFee: decimal.NewFromInt(1)},
		EventBus: bus,
		Logger:   logger,
	}, &config.App{})

	_, err := a.LedgerService.Withdraw(context.Background(), "A1", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Len(t, bus.Published(), 1)
	assert.Contains(t, buf.String(), "withdrawal posted")
}

func TestApp_CloseReverseOrder(t *testing.T) {
	var order []int
	a := &App{Deps: &Deps{Closers: []io.Closer{
		closerFunc(func() error { order = append(order, 1); return nil }),
		closerFunc(func() error { order = append(order, 2); return errors.New("second") }),
	}}}

	err := a.Close()
	assert.EqualError(t, err, "second")
	assert.Equal(t, []int{2, 1}, order)
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	infra_eventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunSmokeTest publishes a withdrawal event through the Kafka bus and waits for the
// bus's own consumer to receive it.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "ledger-smoketest"
	}

	bus, err := infra_eventbus.NewWithKafka(&config.Kafka{
		Brokers:      strings.Split(brokers, ","),
		TopicPrefix:  "ledger.events",
		GroupID:      groupID,
		WriteTimeout: 5 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("connect failed", "error", err)
		return err
	}
	defer func() { _ = bus.Close() }()

	want := uuid.New()
	received := make(chan struct{})
	var once sync.Once
	bus.Register(events.EventTypeWithdrawalPosted, func(_ context.Context, e events.Event) error {
		if w, ok := e.(*events.WithdrawalPosted); ok && w.ID == want {
			once.Do(func() { close(received) })
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = bus.Emit(ctx, &events.WithdrawalPosted{
		Posted: events.Posted{
			ID:         want,
			Amount:     decimal.NewFromInt(10),
			Fee:        decimal.NewFromInt(1),
			OccurredAt: time.Now().UTC(),
		},
		AccountNumber: "SMOKE",
		Balance:       decimal.Zero,
	})
	if err != nil {
		logger.Error("emit failed", "error", err)
		return err
	}
	logger.Info("produced", "id", want)

	select {
	case <-received:
		logger.Info("kafka smoke test passed")
		return nil
	case <-ctx.Done():
		return errors.New("timed out waiting for the event")
	}
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}

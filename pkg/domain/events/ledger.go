// Package events defines the notifications emitted after a ledger operation commits.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType represents the type of an event in the system.
type EventType string

func (t EventType) String() string {
	return string(t)
}

// Event type constants
const (
	EventTypeWithdrawalPosted EventType = "Withdrawal.Posted"
	EventTypeDepositPosted    EventType = "Deposit.Posted"
	EventTypeTransferPosted   EventType = "Transfer.Posted"
)

// Event is implemented by every ledger event.
type Event interface {
	Type() string
}

// Posted carries the fields shared by all posted events.
type Posted struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Fee        decimal.Decimal `json:"fee"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// WithdrawalPosted is emitted after a withdrawal commits.
type WithdrawalPosted struct {
	Posted
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

func (e *WithdrawalPosted) Type() string { return EventTypeWithdrawalPosted.String() }

// DepositPosted is emitted after a deposit commits.
type DepositPosted struct {
	Posted
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
}

func (e *DepositPosted) Type() string { return EventTypeDepositPosted.String() }

// TransferPosted is emitted after a transfer commits.
type TransferPosted struct {
	Posted
	SourceAccount      string          `json:"sourceAccount"`
	DestinationAccount string          `json:"destinationAccount"`
	SourceBalance      decimal.Decimal `json:"sourceBalance"`
	DestinationBalance decimal.Decimal `json:"destinationBalance"`
}

func (e *TransferPosted) Type() string { return EventTypeTransferPosted.String() }

// EventTypes maps type names to constructors for decoding envelopes.
var EventTypes = map[string]func() Event{
	EventTypeWithdrawalPosted.String(): func() Event { return &WithdrawalPosted{} },
	EventTypeDepositPosted.String():    func() Event { return &DepositPosted{} },
	EventTypeTransferPosted.String():   func() Event { return &TransferPosted{} },
}

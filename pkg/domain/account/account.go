// Package account holds the ledger's account and statement entities.
package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement descriptions written by the transaction engine.
const (
	DescWithdrawal    = "Withdrawal"
	DescWithdrawalFee = "Withdrawal fee"
	DescDeposit       = "Deposit"
	DescDepositFee    = "Deposit fee"
	DescTransferFee   = "Transfer fee"
)

// Account is a balance keyed by account number.
//
// Invariants:
//   - Balance is only ever the result of a validated, fee-adjusted engine step.
//   - Accounts are created outside the engine and never deleted by it.
type Account struct {
	Number  string          `json:"accountNumber"`
	Balance decimal.Decimal `json:"balance"`
}

// StatementEntry is one immutable record of a balance-affecting event.
// Amount is signed: positive is a credit, negative a debit.
type StatementEntry struct {
	// Sequence is assigned by the statement store in insertion order and breaks
	// ties between entries carrying the same Timestamp.
	Sequence         int64           `json:"sequence"`
	AccountNumber    string          `json:"accountNumber"`
	Timestamp        time.Time       `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	ResultingBalance decimal.Decimal `json:"balance"`
}

// TransferTo describes the debit side of a transfer.
func TransferTo(destination string) string {
	return "Transfer (to account " + destination + ")"
}

// TransferFrom describes the credit side of a transfer.
func TransferFrom(source string) string {
	return "Transfer (from account " + source + ")"
}

// LockOrder returns the two account numbers in the order their locks must be taken.
// The order depends only on the values, never on which one is the source, so two
// transfers running in opposite directions cannot deadlock.
func LockOrder(a, b string) (first, second string) {
	if a <= b {
		return a, b
	}
	return b, a
}

package transactions

import "github.com/shopspring/decimal"

// Account numbers are capped at the column width. Emptiness is left to the engine so
// that its rule order and messages apply.

// WithdrawRequest is the body of POST /transactions/withdraw.
type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"max=64"`
	Amount        decimal.Decimal `json:"amount"`
}

// DepositRequest is the body of POST /transactions/deposit.
type DepositRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"max=64"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferRequest is the body of POST /transactions/transfer.
type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber" validate:"max=64"`
	ToAccountNumber   string          `json:"toAccountNumber" validate:"max=64"`
	Amount            decimal.Decimal `json:"amount"`
}

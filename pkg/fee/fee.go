// Package fee resolves the fees applied by the transaction engine.
//
// Fees are read from their Source on every call and never cached, so operators can
// change them without restarting the service.
package fee

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/shopspring/decimal"
)

// Configuration keys.
const (
	KeyWithdrawalFee        = "WithdrawalFee"
	KeyDepositPercentageFee = "DepositPercentageFee"
	KeyTransferFee          = "TransferFee"
)

// Fees are the values in force for one operation.
type Fees struct {
	// WithdrawalFee is a flat amount >= 0.
	WithdrawalFee decimal.Decimal
	// DepositFeeRate is a fraction in [0, 1).
	DepositFeeRate decimal.Decimal
	// TransferFee is a flat amount >= 0.
	TransferFee decimal.Decimal
}

// DepositFee is amount * DepositFeeRate.
func (f Fees) DepositFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(f.DepositFeeRate)
}

// Policy is the source of current fee values.
type Policy interface {
	CurrentFees(ctx context.Context) (Fees, error)
}

// Source is key-value access to raw configuration strings.
type Source interface {
	// Lookup returns the raw value for key and whether it was present.
	Lookup(ctx context.Context, key string) (string, bool, error)
}

// ConfigPolicy parses fees from a Source on every call.
type ConfigPolicy struct {
	source Source
}

// NewConfigPolicy returns a Policy backed by source.
func NewConfigPolicy(source Source) *ConfigPolicy {
	return &ConfigPolicy{source: source}
}

// CurrentFees implements Policy. A missing or malformed value is a
// ConfigurationError naming the key; there are no silent defaults. A Source that
// cannot be read at all yields a StoreFailure.
func (p *ConfigPolicy) CurrentFees(ctx context.Context) (Fees, error) {
	withdrawal, err := p.read(ctx, KeyWithdrawalFee)
	if err != nil {
		return Fees{}, err
	}
	rate, err := p.read(ctx, KeyDepositPercentageFee)
	if err != nil {
		return Fees{}, err
	}
	transfer, err := p.read(ctx, KeyTransferFee)
	if err != nil {
		return Fees{}, err
	}

	if withdrawal.IsNegative() {
		return Fees{}, domain.InvalidSetting(KeyWithdrawalFee, fmt.Errorf("negative fee %s", withdrawal))
	}
	if transfer.IsNegative() {
		return Fees{}, domain.InvalidSetting(KeyTransferFee, fmt.Errorf("negative fee %s", transfer))
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return Fees{}, domain.InvalidSetting(KeyDepositPercentageFee, fmt.Errorf("rate %s outside [0,1)", rate))
	}
	return Fees{WithdrawalFee: withdrawal, DepositFeeRate: rate, TransferFee: transfer}, nil
}

func (p *ConfigPolicy) read(ctx context.Context, key string) (decimal.Decimal, error) {
	raw, ok, err := p.source.Lookup(ctx, key)
	if err != nil {
		return decimal.Decimal{}, domain.FeesUnavailable(fmt.Errorf("read %s: %w", key, err))
	}
	if !ok || raw == "" {
		return decimal.Decimal{}, domain.MissingSetting(key)
	}
	// NewFromString accepts only the invariant "1234.56" form; no locale grouping.
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domain.InvalidSetting(key, err)
	}
	return v, nil
}

// Static is a Policy that always returns the same fees.
type Static Fees

// CurrentFees implements Policy.
func (s Static) CurrentFees(context.Context) (Fees, error) {
	return Fees(s), nil
}

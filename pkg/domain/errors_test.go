package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArguments(t *testing.T) {
	tests := []struct {
		name     string
		positive bool
		accounts []string
		want     string
	}{
		{"valid single", true, []string{"A1"}, ""},
		{"valid pair", true, []string{"A1", "B2"}, ""},
		{"empty beats everything", false, []string{"", ""}, domain.MsgEmptyAccountNumber},
		{"empty destination", true, []string{"A1", ""}, domain.MsgEmptyAccountNumber},
		{"equal beats amount", false, []string{"A1", "A1"}, domain.MsgEqualAccounts},
		{"non-positive amount", false, []string{"A1"}, domain.MsgNonPositiveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateArguments(tt.positive, tt.accounts...)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("withdraw: %w", domain.InsufficientFunds())

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, domain.DestinationNotFound(), domain.ErrAccountNotFound)
	assert.NotErrorIs(t, domain.DestinationNotFound(), domain.SourceNotFound())
}

func TestStoreFailureHidesCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")
	err := domain.StoreFailure(cause)

	assert.Equal(t, domain.MsgStoreFailure, err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, domain.KindStoreFailure, domain.KindOf(err))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.Kind
		msg  string
	}{
		{"classified passes through", domain.EmptyResult(), domain.KindEmptyResult, domain.MsgEmptyStatement},
		{"cancelled", context.Canceled, domain.KindUnexpected, domain.MsgUnexpected},
		{"deadline", fmt.Errorf("tx: %w", context.DeadlineExceeded), domain.KindUnexpected, domain.MsgUnexpected},
		{"not found sentinel", domain.ErrNotFound, domain.KindStoreFailure, domain.MsgStoreFailure},
		{"conflict sentinel", fmt.Errorf("%w: 40001", domain.ErrConcurrentConflict), domain.KindStoreFailure, domain.MsgStoreFailure},
		{"anything else", errors.New("boom"), domain.KindUnexpected, domain.MsgUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Classify(tt.err)
			assert.Equal(t, tt.kind, domain.KindOf(got))
			assert.Equal(t, tt.msg, got.Error())
		})
	}
	assert.NoError(t, domain.Classify(nil))
}

func TestSettingErrors(t *testing.T) {
	assert.Equal(t, "Fee setting TransferFee is missing.", domain.MissingSetting("TransferFee").Error())
	invalid := domain.InvalidSetting("WithdrawalFee", errors.New("bad digit"))
	assert.Equal(t, "Fee setting WithdrawalFee is invalid.", invalid.Error())
	assert.Equal(t, domain.KindConfigurationError, domain.KindOf(invalid))

	unavailable := domain.FeesUnavailable(errors.New("connection reset"))
	assert.Equal(t, domain.MsgFeesUnavailable, unavailable.Error())
	assert.Equal(t, domain.KindStoreFailure, domain.KindOf(unavailable))
}

func TestAbandonedCallIsUnexpected(t *testing.T) {
	waited := fmt.Errorf("acquire lock: %w", context.DeadlineExceeded)

	tests := []struct {
		name  string
		err   error
		cause error
	}{
		{"lock wait expired", domain.StoreFailure(waited), context.DeadlineExceeded},
		{"cancelled mid scope", domain.StoreFailure(context.Canceled), context.Canceled},
		{"fee read expired", domain.FeesUnavailable(waited), context.DeadlineExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, domain.KindUnexpected, domain.KindOf(tt.err))
			assert.Equal(t, domain.MsgUnexpected, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.cause)
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "InsufficientFunds", domain.KindInsufficientFunds.String())
	assert.Equal(t, "Kind(42)", domain.Kind(42).String())
	assert.Equal(t, domain.KindUnexpected, domain.KindOf(errors.New("plain")))

	for _, k := range []domain.Kind{domain.KindInvalidArgument, domain.KindAccountNotFound, domain.KindInsufficientFunds, domain.KindEmptyResult} {
		assert.True(t, k.ClientFacing(), k.String())
	}
	for _, k := range []domain.Kind{domain.KindUnexpected, domain.KindConfigurationError, domain.KindStoreFailure} {
		assert.False(t, k.ClientFacing(), k.String())
	}
}

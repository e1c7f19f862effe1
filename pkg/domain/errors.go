package domain

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies every failure the ledger reports to its callers.
type Kind int

const (
	// KindUnexpected is anything not classified below.
	KindUnexpected Kind = iota
	// KindInvalidArgument is malformed input caught before any store is touched.
	KindInvalidArgument
	// KindAccountNotFound means a referenced account has no balance record.
	KindAccountNotFound
	// KindInsufficientFunds means the balance cannot cover the movement plus its fee.
	KindInsufficientFunds
	// KindEmptyResult means a statement query returned zero entries.
	KindEmptyResult
	// KindConfigurationError means a fee value is missing or unparseable.
	KindConfigurationError
	// KindStoreFailure means a store or the unit of work reported an error.
	KindStoreFailure
)

var kindNames = map[Kind]string{
	KindUnexpected:         "Unexpected",
	KindInvalidArgument:    "InvalidArgument",
	KindAccountNotFound:    "AccountNotFound",
	KindInsufficientFunds:  "InsufficientFunds",
	KindEmptyResult:        "EmptyResult",
	KindConfigurationError: "ConfigurationError",
	KindStoreFailure:       "StoreFailure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ClientFacing reports whether the kind describes a rejection of the caller's request
// rather than a server-side failure.
func (k Kind) ClientFacing() bool {
	switch k {
	case KindInvalidArgument, KindAccountNotFound, KindInsufficientFunds, KindEmptyResult:
		return true
	default:
		return false
	}
}

// Fixed messages. Identical failure conditions always produce the identical message.
const (
	MsgEmptyAccountNumber   = "Account number cannot be null or empty."
	MsgEqualAccounts        = "Source and destination accounts cannot be equal."
	MsgNonPositiveAmount    = "Amount must be greater than zero"
	MsgSourceNotFound       = "Source account inexistent."
	MsgDestinationNotFound  = "Destination account inexistent."
	MsgInsufficientFunds    = "Insufficient funds."
	MsgEmptyStatement       = "No statement entries found for account."
	MsgFeesUnavailable      = "Fee configuration is unavailable."
	MsgStoreFailure         = "The ledger store failed to complete the operation."
	MsgUnexpected           = "An unexpected error occurred."
	msgConfigurationPattern = "Fee setting %s is %s."
)

// Error is the classified error returned by every ledger operation.
type Error struct {
	Kind    Kind
	Message string
	// Err holds the underlying cause. It is never part of Message.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, domain.ErrInsufficientFunds).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind-only sentinels for errors.Is comparisons.
var (
	ErrInvalidArgument    = &Error{Kind: KindInvalidArgument}
	ErrAccountNotFound    = &Error{Kind: KindAccountNotFound}
	ErrInsufficientFunds  = &Error{Kind: KindInsufficientFunds}
	ErrEmptyResult        = &Error{Kind: KindEmptyResult}
	ErrConfiguration      = &Error{Kind: KindConfigurationError}
	ErrStoreFailure       = &Error{Kind: KindStoreFailure}
	ErrUnexpected         = &Error{Kind: KindUnexpected}
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrConcurrentConflict = errors.New("concurrent modification")
)

// ValidateArguments returns the InvalidArgument error for the first violated rule in
// the fixed order: empty account, equal accounts, non-positive amount. Pass one account
// for single-account operations and two (source, destination) for transfers.
func ValidateArguments(amountPositive bool, accounts ...string) error {
	for _, n := range accounts {
		if n == "" {
			return &Error{Kind: KindInvalidArgument, Message: MsgEmptyAccountNumber}
		}
	}
	if len(accounts) == 2 && accounts[0] == accounts[1] {
		return &Error{Kind: KindInvalidArgument, Message: MsgEqualAccounts}
	}
	if !amountPositive {
		return &Error{Kind: KindInvalidArgument, Message: MsgNonPositiveAmount}
	}
	return nil
}

// SourceNotFound is returned when the debited (or only) account is absent.
func SourceNotFound() error {
	return &Error{Kind: KindAccountNotFound, Message: MsgSourceNotFound}
}

// DestinationNotFound is returned when the credited side of a transfer is absent.
func DestinationNotFound() error {
	return &Error{Kind: KindAccountNotFound, Message: MsgDestinationNotFound}
}

// InsufficientFunds is returned when balance < amount + fee.
func InsufficientFunds() error {
	return &Error{Kind: KindInsufficientFunds, Message: MsgInsufficientFunds}
}

// EmptyResult is returned when a statement has no entries.
func EmptyResult() error {
	return &Error{Kind: KindEmptyResult, Message: MsgEmptyStatement}
}

// MissingSetting reports a fee key absent from configuration.
func MissingSetting(key string) error {
	return &Error{Kind: KindConfigurationError, Message: fmt.Sprintf(msgConfigurationPattern, key, "missing")}
}

// InvalidSetting reports a fee key whose value cannot be used.
func InvalidSetting(key string, cause error) error {
	return &Error{
		Kind:    KindConfigurationError,
		Message: fmt.Sprintf(msgConfigurationPattern, key, "invalid"),
		Err:     cause,
	}
}

// FeesUnavailable reports that the fee values could not be read at all. That is a
// failure of the settings store, not of the values it holds.
func FeesUnavailable(cause error) error {
	if abandoned(cause) {
		return Classify(cause)
	}
	return &Error{Kind: KindStoreFailure, Message: MsgFeesUnavailable, Err: cause}
}

// StoreFailure wraps an error reported by a store or the unit of work. A caller that
// gave up (cancelled or expired context) is Unexpected wherever it was noticed.
func StoreFailure(cause error) error {
	if abandoned(cause) {
		return Classify(cause)
	}
	return &Error{Kind: KindStoreFailure, Message: MsgStoreFailure, Err: cause}
}

func abandoned(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// KindOf returns the classification of err. Unclassified errors are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Classify turns any error into a *Error. Already classified errors pass through
// unchanged; store sentinels become StoreFailure; everything else, context
// cancellation included, becomes an opaque Unexpected.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case abandoned(err):
		return &Error{Kind: KindUnexpected, Message: MsgUnexpected, Err: err}
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrConcurrentConflict):
		return StoreFailure(err)
	}
	return &Error{Kind: KindUnexpected, Message: MsgUnexpected, Err: err}
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrNotImplemented    = errors.New("not implemented")

	// request error
	ErrInvalidAddress  = errors.New("Invalid address")
	ErrInvalidTxHash   = errors.New("Invalid transaction hash")
	ErrInvalidAmount   = errors.New("Invalid amount")
	ErrEmptyListings   = errors.New("no listing selected")
	ErrDuplicateListed = errors.New("listing selected more than once")

	// marketplace
	ErrListingNotActionable = errors.New("listing is cancelled or filled")
	ErrListingReserved      = errors.New("listing is reserved by another buyer")
	ErrOwnListing           = errors.New("cannot buy your own listing")
	ErrMixedReservation     = errors.New("selected listings are not in the same reservation state")
	ErrNotSeller            = errors.New("only the seller can cancel this listing")
	ErrInvalidTransition    = errors.New("operation not allowed in current state")
	ErrNotCancelable        = errors.New("flow cannot be cancelled once the deposit was broadcast")
	ErrDepositExpired       = errors.New("reservation expired before the purchase")
	ErrTxOutcomeUnknown     = errors.New("transaction outcome unknown")

	// chain / wallet
	ErrRequestRejected   = errors.New("Request rejected")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountNotFound   = errors.New("account not found")
	ErrSignerMismatch    = errors.New("intent sender does not match wallet address")
)

// ErrorKind classifies errors surfaced to callers
type ErrorKind string

const (
	// ErrorKindValidation errors are caught locally and never reach the network
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindEstimation errors come from fee or balance simulation
	ErrorKindEstimation ErrorKind = "estimation"
	// ErrorKindTransaction errors come from signing, broadcast or on-chain execution
	ErrorKindTransaction ErrorKind = "transaction"
	ErrorKindGeneric     ErrorKind = "generic"
)

// Error carries a kind and the operation it happened in
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
	Hint string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(op string, err error) error {
	return &Error{Kind: ErrorKindValidation, Op: op, Err: err}
}

func NewEstimationError(op string, err error) error {
	e := &Error{Kind: ErrorKindEstimation, Op: op, Err: err}
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		e.Hint = "top up the wallet and try again"
	case errors.Is(err, ErrAccountNotFound):
		e.Hint = "the address has never received funds, send a small amount to it first"
	}
	return e
}

func NewTransactionError(op string, err error) error {
	return &Error{Kind: ErrorKindTransaction, Op: op, Err: err}
}

// KindOf returns the kind of err, ErrorKindGeneric when err is unclassified
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindGeneric
}

// HintOf returns the remediation hint attached to err
func HintOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Hint
	}
	return ""
}

// Retryable reports whether err should be offered a retry action
func Retryable(err error) bool {
	return err != nil && KindOf(err) != ErrorKindValidation
}

var friendlyMessages = []struct {
	pattern string
	message string
}{
	{"duplicate content hash", "This content has already been inscribed"},
	{"order already filled", "This listing has already been sold"},
	{"listing already filled", "This listing has already been sold"},
	{"already deposited", "Another buyer reserved this listing first"},
	{"reservation expired", "Your reservation expired, reserve the listing again"},
	{"insufficient funds", "Your wallet does not have enough funds to cover this transaction"},
	{"account not found", "Your account has no on-chain history yet, fund it before trading"},
	{"request rejected", "You rejected the request in your wallet"},
	{"transaction outcome unknown", "The transaction was never confirmed, retry to submit it again"},
}

// FriendlyMessage maps known error texts to user facing copy. Unknown texts pass through unmodified.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, f := range friendlyMessages {
		if strings.Contains(lower, f.pattern) {
			return f.message
		}
	}
	return msg
}

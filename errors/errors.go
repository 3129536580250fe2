package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrDuplicatePayment      = fmt.Errorf("payment already processed")
	ErrPaymentNotFound       = fmt.Errorf("payment transaction not found")
	ErrPaymentNotSuccessful  = fmt.Errorf("payment transaction not successful")
	ErrPaymentAmountMismatch = fmt.Errorf("payment amount does not match the required fee")
	ErrInvalidTransactionID  = fmt.Errorf("invalid transaction id")
	ErrInvalidInbound        = fmt.Errorf("invalid inbound message")

	ErrStoreUnavailable  = fmt.Errorf("dedupe store unavailable")
	ErrTransientLedger   = fmt.Errorf("ledger temporarily unavailable")
	ErrPublishFailed     = fmt.Errorf("publish to log failed")
	ErrSubscriptionError = fmt.Errorf("log subscription failed")
)

// IsVerificationFailure reports whether err means the payment itself did not qualify.
func IsVerificationFailure(err error) bool {
	return Is(err, ErrPaymentNotFound) ||
		Is(err, ErrPaymentNotSuccessful) ||
		Is(err, ErrPaymentAmountMismatch) ||
		Is(err, ErrInvalidTransactionID)
}

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

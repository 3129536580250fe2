package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsVerificationFailure(t *testing.T) {
	req := require.New(t)

	req.True(IsVerificationFailure(fmt.Errorf("%w: 0.0.7", ErrPaymentNotFound)))
	req.True(IsVerificationFailure(ErrPaymentNotSuccessful))
	req.True(IsVerificationFailure(fmt.Errorf("%w: got 4", ErrPaymentAmountMismatch)))
	req.False(IsVerificationFailure(ErrStoreUnavailable))
	req.False(IsVerificationFailure(fmt.Errorf("%w: rejected", ErrPublishFailed)))
	req.False(IsVerificationFailure(nil))
}

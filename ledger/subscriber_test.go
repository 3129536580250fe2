package ledger

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDeliveryGuard_OrderedOnce(t *testing.T) {
	req := require.New(t)
	var got []uint64
	guard := newDeliveryGuard(logs.GetLoggerFromLevel(slog.LevelDebug),
		func(entry domain.LogEntry) { got = append(got, entry.Sequence) },
		func(err error) { req.Fail("unexpected error", err) })

	// When the stream replays or goes backwards
	for _, seq := range []uint64{1, 2, 2, 1, 3, 5, 4, 6} {
		guard.deliver(domain.LogEntry{Sequence: seq})
	}

	// Then each sequence is delivered once, increasing
	req.Equal([]uint64{1, 2, 3, 5, 6}, got)
}

func TestDeliveryGuard_NoCallbackAfterClose(t *testing.T) {
	req := require.New(t)
	messages, failures := 0, 0
	guard := newDeliveryGuard(slog.Default(),
		func(domain.LogEntry) { messages++ },
		func(error) { failures++ })

	guard.deliver(domain.LogEntry{Sequence: 1})
	guard.fail(fmt.Errorf("boom"))
	guard.close()
	guard.deliver(domain.LogEntry{Sequence: 2})
	guard.fail(fmt.Errorf("boom"))

	req.Equal(1, messages)
	req.Equal(1, failures)
}

func TestSubscriptionError(t *testing.T) {
	req := require.New(t)

	err := subscriptionError(*status.New(codes.Unavailable, "mirror node gone"))
	req.ErrorIs(err, errors.ErrSubscriptionError)
	req.Contains(err.Error(), "retryable=true")

	err = subscriptionError(*status.New(codes.InvalidArgument, "bad topic"))
	req.Contains(err.Error(), "retryable=false")
}

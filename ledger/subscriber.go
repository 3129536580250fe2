package ledger

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Subscriber streams topic messages from the mirror network, starting now.
type Subscriber struct {
	log    *slog.Logger
	client *hedera.Client
}

func NewSubscriber(log *slog.Logger, client *Client) *Subscriber {
	return &Subscriber{log: log, client: client.client}
}

// Subscribe opens the topic stream. It is closed by Close or when ctx ends.
// There is no resubscription: after onError the stream may stay silent.
func (s *Subscriber) Subscribe(ctx context.Context, topicID string,
	onMessage func(entry domain.LogEntry), onError func(err error)) (contract.Subscription, error) {
	topic, err := hedera.TopicIDFromString(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid topic %q: %v", errors.ErrSubscriptionError, topicID, err)
	}
	guard := newDeliveryGuard(s.log, onMessage, onError)
	handle, err := hedera.NewTopicMessageQuery().
		SetTopicID(topic).
		SetStartTime(time.Now()).
		SetErrorHandler(func(stat status.Status) {
			guard.fail(subscriptionError(stat))
		}).
		Subscribe(s.client, func(message hedera.TopicMessage) {
			guard.deliver(domain.DecodeEntry(message.Contents, message.SequenceNumber, message.ConsensusTimestamp))
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSubscriptionError, err)
	}
	sub := &subscription{handle: handle, guard: guard}
	stop := context.AfterFunc(ctx, sub.Close)
	sub.stop = stop
	s.log.Info("Subscribed to topic", "topic_id", topicID)
	return sub, nil
}

type subscription struct {
	handle hedera.SubscriptionHandle
	guard  *deliveryGuard
	stop   func() bool
	once   sync.Once
}

func (s *subscription) Close() {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop()
		}
		s.guard.close()
		s.handle.Unsubscribe()
	})
}

// deliveryGuard serializes callbacks, drops replays and stale sequences,
// and guarantees no callback runs once close has returned.
type deliveryGuard struct {
	mu           sync.Mutex
	log          *slog.Logger
	onMessage    func(entry domain.LogEntry)
	onError      func(err error)
	lastSequence uint64
	delivered    bool
	closed       bool
}

func newDeliveryGuard(log *slog.Logger, onMessage func(domain.LogEntry), onError func(error)) *deliveryGuard {
	return &deliveryGuard{log: log, onMessage: onMessage, onError: onError}
}

func (g *deliveryGuard) deliver(entry domain.LogEntry) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	if g.delivered && entry.Sequence <= g.lastSequence {
		g.log.Debug("Dropping already delivered log entry",
			"sequence", entry.Sequence, "last_sequence", g.lastSequence)
		return
	}
	g.lastSequence = entry.Sequence
	g.delivered = true
	g.onMessage(entry)
}

func (g *deliveryGuard) fail(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.onError(err)
}

func (g *deliveryGuard) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

func subscriptionError(stat status.Status) error {
	return fmt.Errorf("%w: %s: %s (retryable=%t)",
		errors.ErrSubscriptionError, stat.Code(), stat.Message(), IsRetryableCode(stat.Code()))
}

// IsRetryableCode reports whether a stream failure is worth resubscribing for.
func IsRetryableCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.ResourceExhausted, codes.Internal,
		codes.DeadlineExceeded, codes.Aborted, codes.Unknown:
		return true
	default:
		return false
	}
}

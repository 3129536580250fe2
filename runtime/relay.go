// Package runtime coordinates payment verification, publication to the consensus log
// and live fan-out to connected clients. It owns no persistent state of its own.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

type RelayConfig struct {
	TopicID         string
	OperatorAccount string
	// RequiredFee is matched exactly, in tinybars.
	RequiredFee            int64
	ReplyText              string
	ReplyFrom              string
	SubscriptionBufferSize int
	MaxInFlight            int64
	StoreTimeout           time.Duration
	LedgerTimeout          time.Duration
	// MetricInterval paces the sampling of the subscription buffer; zero disables it.
	MetricInterval time.Duration
}

const saturationWarnRatio = 0.8

type Relay struct {
	mu         sync.Mutex
	log        *slog.Logger
	config     RelayConfig
	dedupe     contract.IDedupeStore
	ledger     contract.ILedgerClient
	subscriber contract.ILogSubscriber
	hub        contract.IHub
	supervisor contract.ISupervisor
	liveness   contract.ILivenessReporter
	metrics    *observability.Metrics

	entries      chan domain.LogEntry
	inFlight     sync.WaitGroup
	slots        *semaphore.Weighted
	subscription contract.Subscription
	pipelineCtx  context.Context
	started      bool
	stopped      bool
	stopping     chan struct{}
	supervised   chan struct{}
}

func NewRelay(log *slog.Logger, config RelayConfig,
	dedupe contract.IDedupeStore, ledger contract.ILedgerClient, subscriber contract.ILogSubscriber,
	hub contract.IHub, supervisor contract.ISupervisor, liveness contract.ILivenessReporter,
	metrics *observability.Metrics) *Relay {
	if config.SubscriptionBufferSize <= 0 {
		config.SubscriptionBufferSize = 256
	}
	if config.MaxInFlight <= 0 {
		config.MaxInFlight = 128
	}
	if liveness == nil {
		liveness = noopLiveness{}
	}
	return &Relay{
		log:         log,
		config:      config,
		dedupe:      dedupe,
		ledger:      ledger,
		subscriber:  subscriber,
		hub:         hub,
		supervisor:  supervisor,
		liveness:    liveness,
		metrics:     metrics,
		entries:     make(chan domain.LogEntry, config.SubscriptionBufferSize),
		slots:       semaphore.NewWeighted(config.MaxInFlight),
		pipelineCtx: context.Background(),
		stopping:    make(chan struct{}),
		supervised:  make(chan struct{}),
	}
}

// Start registers the hub handlers, opens the log subscription and starts the
// broadcast worker. A subscription that cannot be opened is returned as an error:
// the relay is useless without it.
func (r *Relay) Start(ctx context.Context) error {
	r.hub.OnConnect(r.announceConnect)
	r.hub.OnDisconnect(r.announceDisconnect)
	r.hub.OnMessage(r.receive)

	subscription, err := r.subscriber.Subscribe(ctx, r.config.TopicID, r.enqueue, r.subscriptionFailed)
	if err != nil {
		return fmt.Errorf("subscription to topic %s failed: %w", r.config.TopicID, err)
	}

	r.mu.Lock()
	r.subscription = subscription
	r.pipelineCtx = context.WithoutCancel(ctx)
	r.started = true
	r.mu.Unlock()
	r.liveness.SetServing(true)

	r.supervisor.Add(workers.NewLogBroadcaster(r.log, r.entries, r.hub, r.metrics))
	if r.config.MetricInterval > 0 {
		r.supervisor.Add(workers.NewChannelCapacityWorker(r.log,
			[]workers.NamedChannel{{Name: "log_entries", Channel: r.entries}},
			r.metrics, r.config.MetricInterval, saturationWarnRatio))
	}
	go func() {
		defer close(r.supervised)
		r.supervisor.Run(ctx)
	}()
	r.log.Info("Relay started", "topic_id", r.config.TopicID, "operator", r.config.OperatorAccount)
	return nil
}

// Stop closes the subscription, stops the broadcast worker and waits for
// in-flight verifications: a paid message is never abandoned halfway.
func (r *Relay) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.stopping)
	subscription, started := r.subscription, r.started
	r.mu.Unlock()

	r.log.Info("Requesting relay shutdown")
	if subscription != nil {
		subscription.Close()
	}
	r.supervisor.Stop()
	if started {
		<-r.supervised
	}
	r.inFlight.Wait()
	r.liveness.SetServing(false)
	r.log.Debug("Relay stopped")
}

// Submit runs the verification pipeline of msg in the background.
// The pipeline does not depend on the submitting connection staying open.
func (r *Relay) Submit(msg domain.InboundMessage) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		r.log.Warn("Relay stopping, inbound message dropped", "transaction_id", msg.PaymentTxID)
		return
	}
	r.inFlight.Add(1)
	ctx := r.pipelineCtx
	r.mu.Unlock()

	go func() {
		defer r.inFlight.Done()
		if err := r.slots.Acquire(ctx, 1); err != nil {
			return
		}
		defer r.slots.Release(1)
		r.HandleInbound(ctx, msg)
	}()
}

// HandleInbound verifies the payment behind msg and publishes it with the synthetic reply.
// Clients are not told about rejections: silence is the failure signal.
func (r *Relay) HandleInbound(ctx context.Context, msg domain.InboundMessage) domain.Outcome {
	outcome, err := r.process(ctx, msg)
	r.report(msg, outcome, err)
	return outcome
}

func (r *Relay) process(ctx context.Context, msg domain.InboundMessage) (domain.Outcome, error) {
	txID := msg.PaymentTxID
	sender, err := domain.PayerAccount(txID)
	if err != nil {
		return domain.OutcomeRejected, err
	}

	processed, err := r.isProcessed(ctx, txID)
	if err != nil {
		return domain.OutcomeRejected, err
	}
	if processed {
		return domain.OutcomeDuplicate, errors.ErrDuplicatePayment
	}

	record, err := r.fetchTransaction(ctx, txID)
	if err != nil {
		return domain.OutcomeRejected, err
	}
	if err = r.verify(record); err != nil {
		return domain.OutcomeRejected, err
	}

	// The marker must be durable before the first publish attempt.
	created, err := r.markProcessed(ctx, txID)
	if err != nil {
		return domain.OutcomeRejected, err
	}
	if !created {
		return domain.OutcomeDuplicate, errors.ErrDuplicatePayment
	}

	if err = r.publish(ctx, domain.LogPayload{Text: msg.Text, From: sender}); err != nil {
		return domain.OutcomeRejected, err
	}
	if err = r.publish(ctx, domain.LogPayload{Text: r.config.ReplyText, From: r.config.ReplyFrom}); err != nil {
		return domain.OutcomePublished, fmt.Errorf("synthetic response: %w", err)
	}
	return domain.OutcomePublished, nil
}

func (r *Relay) verify(record domain.TransactionRecord) error {
	if !record.Succeeded() {
		return fmt.Errorf("%w: status %s", errors.ErrPaymentNotSuccessful, record.Status)
	}
	transfer, ok := record.TransferTo(r.config.OperatorAccount)
	if !ok {
		return fmt.Errorf("%w: no transfer to %s", errors.ErrPaymentAmountMismatch, r.config.OperatorAccount)
	}
	if transfer.Amount != r.config.RequiredFee {
		return fmt.Errorf("%w: received %d, required %d",
			errors.ErrPaymentAmountMismatch, transfer.Amount, r.config.RequiredFee)
	}
	return nil
}

func (r *Relay) isProcessed(ctx context.Context, txID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.config.StoreTimeout)
	defer cancel()
	return r.dedupe.IsProcessed(ctx, txID)
}

func (r *Relay) markProcessed(ctx context.Context, txID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.config.StoreTimeout)
	defer cancel()
	return r.dedupe.MarkProcessed(ctx, txID)
}

func (r *Relay) fetchTransaction(ctx context.Context, txID string) (domain.TransactionRecord, error) {
	ctx, cancel := withTimeout(ctx, r.config.LedgerTimeout)
	defer cancel()
	return r.ledger.GetTransaction(ctx, txID)
}

func (r *Relay) publish(ctx context.Context, payload domain.LogPayload) error {
	ctx, cancel := withTimeout(ctx, r.config.LedgerTimeout)
	defer cancel()
	return r.ledger.PublishToLog(ctx, r.config.TopicID, payload)
}

func (r *Relay) report(msg domain.InboundMessage, outcome domain.Outcome, err error) {
	log := r.log.With("transaction_id", msg.PaymentTxID, "outcome", outcome)
	reason := failureReason(err)
	r.metrics.Outcome(outcome, reason)

	switch {
	case outcome == domain.OutcomeDuplicate:
		log.Debug("Duplicate payment dropped")
	case outcome == domain.OutcomePublished && err != nil:
		log.Error("Message published but synthetic response failed", "error", err)
	case outcome == domain.OutcomePublished:
		log.Info("Payment verified, message published")
	case errors.IsVerificationFailure(err):
		log.Warn("Payment verification failed", "reason", reason, "error", err)
	default:
		log.Error("Message processing aborted", "reason", reason, "error", err)
	}
}

func failureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errors.ErrDuplicatePayment):
		return "duplicate"
	case errors.Is(err, errors.ErrInvalidTransactionID):
		return "invalid_transaction_id"
	case errors.Is(err, errors.ErrPaymentNotFound):
		return "not_found"
	case errors.Is(err, errors.ErrPaymentNotSuccessful):
		return "not_successful"
	case errors.Is(err, errors.ErrPaymentAmountMismatch):
		return "amount_mismatch"
	case errors.Is(err, errors.ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, errors.ErrTransientLedger):
		return "ledger_unavailable"
	case errors.Is(err, errors.ErrPublishFailed):
		return "publish_failed"
	case errors.Is(err, errors.ErrInvalidInbound):
		return "invalid_inbound"
	default:
		return "unknown"
	}
}

func (r *Relay) receive(clientID, event string, data []byte) {
	if event != domain.EventMessage {
		r.log.Debug("Ignoring client event", "client", clientID, "event", event)
		return
	}
	msg, err := domain.DecodeInbound(data)
	if err != nil {
		r.metrics.Outcome(domain.OutcomeRejected, failureReason(err))
		r.log.Warn("Invalid inbound message", "client", clientID, "error", err)
		return
	}
	r.Submit(msg)
}

// enqueue hands a delivered entry to the broadcast worker.
// It applies backpressure to the subscription instead of dropping entries.
func (r *Relay) enqueue(entry domain.LogEntry) {
	select {
	case r.entries <- entry:
	case <-r.stopping:
		r.log.Debug("Relay stopping, log entry not broadcast", "sequence", entry.Sequence)
	}
}

func (r *Relay) subscriptionFailed(err error) {
	r.metrics.SubscriptionError()
	r.liveness.SetServing(false)
	r.log.Error("Message subscriber raised an error", "topic_id", r.config.TopicID, "error", err)
}

func (r *Relay) announceConnect(clientID string) {
	r.hub.Broadcast(domain.EventConnect, domain.ConnectPresence{Client: clientID, TopicID: r.config.TopicID})
}

func (r *Relay) announceDisconnect(clientID string) {
	r.hub.Broadcast(domain.EventDisconnect, domain.DisconnectPresence{
		OperatorAccount: r.config.OperatorAccount,
		Client:          clientID,
	})
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type noopLiveness struct{}

func (noopLiveness) SetServing(bool) {}

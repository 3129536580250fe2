package test

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/mocks"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	topicID  = "0.0.5005"
	operator = "0.0.3"
	txID     = "0.0.1@1700000000.000000001"
)

func paid() domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:     txID,
		Status: domain.StatusSuccess,
		Transfers: []domain.Transfer{
			{AccountID: "0.0.1", Amount: -domain.DefaultRequiredFee},
			{AccountID: operator, Amount: domain.DefaultRequiredFee},
		},
	}
}

// consensusLog wires the mocked ledger to the mocked subscriber:
// every published payload comes back through the subscription with the next sequence.
type consensusLog struct {
	mu        sync.Mutex
	sequence  uint64
	onMessage func(domain.LogEntry)
}

func (c *consensusLog) subscribe(_ context.Context, _ string, onMessage func(domain.LogEntry), _ func(error)) (contract.Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = onMessage
	return closer{}, nil
}

func (c *consensusLog) publish(_ context.Context, _ string, payload domain.LogPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequence++
	contents, err := domain.EncodePayload(payload)
	if err != nil {
		return err
	}
	c.onMessage(domain.DecodeEntry(contents, c.sequence, time.Now()))
	return nil
}

type closer struct{}

func (closer) Close() {}

func openBadger(t *testing.T, dir string) *badger.DB {
	t.Helper()
	// Reduced to 16 Mo for testing
	db, err := badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	return db
}

func startRelay(t *testing.T, db *badger.DB, ledger contract.ILedgerClient, subscriber contract.ILogSubscriber) (*runtime.Relay, *runtime.Hub) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := runtime.NewHub(log, nil, 16)
	relay := runtime.NewRelay(log, runtime.RelayConfig{
		TopicID:         topicID,
		OperatorAccount: operator,
		RequiredFee:     domain.DefaultRequiredFee,
		ReplyText:       "Agents response",
		ReplyFrom:       "agent",
		StoreTimeout:    time.Second,
		LedgerTimeout:   time.Second,
		MetricInterval:  10 * time.Millisecond,
	}, repositories.NewDedupeRepository(db, log), ledger, subscriber, hub,
		workers.NewSupervisor(log, 200*time.Millisecond), nil, nil)
	require.NoError(t, relay.Start(context.Background()))
	return relay, hub
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockILedgerClient(ctrl)
	subscriber := mocks.NewMockILogSubscriber(ctrl)
	consensus := &consensusLog{}

	subscriber.EXPECT().Subscribe(gomock.Any(), topicID, gomock.Any(), gomock.Any()).
		DoAndReturn(consensus.subscribe).Times(2)
	ledger.EXPECT().GetTransaction(gomock.Any(), txID).Return(paid(), nil).Times(1)
	// The paid message and the synthetic response, once for the whole scenario
	ledger.EXPECT().PublishToLog(gomock.Any(), topicID, gomock.Any()).
		DoAndReturn(consensus.publish).Times(2)

	// 1. First run: a client pays and posts
	db := openBadger(t, dir)
	relay, hub := startRelay(t, db, ledger, subscriber)

	frames := make(chan domain.Frame, 32)
	client := hub.Connect(func(frame []byte) error {
		var f domain.Frame
		if err := json.Unmarshal(frame, &f); err != nil {
			return err
		}
		frames <- f
		return nil
	})
	hub.Receive(client.ID, domain.EventMessage,
		[]byte(fmt.Sprintf(`{"message":"this message costs 5 hbar","transactionId":%q}`, txID)))

	var broadcasts []domain.MessageBroadcast
	for len(broadcasts) < 2 {
		select {
		case f := <-frames:
			if f.Event != domain.EventMessage {
				continue
			}
			var b domain.MessageBroadcast
			req.NoError(json.Unmarshal(f.Data, &b))
			broadcasts = append(broadcasts, b)
		case <-time.After(2 * time.Second):
			req.FailNow("Timeout: message has never been broadcast")
		}
	}
	req.Equal([]domain.MessageBroadcast{
		{Message: "this message costs 5 hbar", From: "0.0.1", Sequence: "1"},
		{Message: "Agents response", From: "agent", Sequence: "2"},
	}, broadcasts)

	hub.Disconnect(client)
	relay.Stop()
	req.NoError(db.Close())

	// 2. Second run on the same directory: the payment is remembered
	db = openBadger(t, dir)
	defer db.Close()
	relay, _ = startRelay(t, db, ledger, subscriber)
	defer relay.Stop()

	outcome := relay.HandleInbound(context.Background(), domain.InboundMessage{Text: "again", PaymentTxID: txID})
	req.Equal(domain.OutcomeDuplicate, outcome)
}

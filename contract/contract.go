//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IDedupeStore records which payment transactions already produced a message.
// MarkProcessed is set-if-absent: it reports true only for the call that created the marker.
type IDedupeStore interface {
	IsProcessed(ctx context.Context, txID string) (bool, error)
	MarkProcessed(ctx context.Context, txID string) (bool, error)
}

type ILedgerClient interface {
	GetTransaction(ctx context.Context, txID string) (domain.TransactionRecord, error)
	PublishToLog(ctx context.Context, topicID string, payload domain.LogPayload) error
}

type Subscription interface {
	Close()
}

// ILogSubscriber delivers log entries in increasing sequence order, once each.
type ILogSubscriber interface {
	Subscribe(ctx context.Context, topicID string,
		onMessage func(entry domain.LogEntry), onError func(err error)) (Subscription, error)
}

type IBroadcaster interface {
	Broadcast(event string, payload any)
}

type IHub interface {
	IBroadcaster
	OnConnect(handler func(clientID string))
	OnMessage(handler func(clientID, event string, data []byte))
	OnDisconnect(handler func(clientID string))
}

// ILivenessReporter publishes whether the log subscription is alive.
type ILivenessReporter interface {
	SetServing(serving bool)
}

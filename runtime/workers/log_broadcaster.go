package workers

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// LogBroadcaster mirrors confirmed log entries to every connected client.
//
// It is the only producer of "message" broadcasts: a client never sees a chat
// message that the consensus log has not ordered. Entries are consumed in the
// order the subscriber delivered them and a lower sequence is never broadcast
// after a higher one, including across restarts by the supervisor.
type LogBroadcaster struct {
	log          *slog.Logger
	entries      <-chan domain.LogEntry
	broadcaster  contract.IBroadcaster
	metrics      *observability.Metrics
	lastSequence uint64
	broadcasted  bool
}

func NewLogBroadcaster(log *slog.Logger, entries <-chan domain.LogEntry,
	broadcaster contract.IBroadcaster, metrics *observability.Metrics) *LogBroadcaster {
	return &LogBroadcaster{log: log, entries: entries, broadcaster: broadcaster, metrics: metrics}
}

func (w *LogBroadcaster) Run(ctx context.Context) error {
	for {
		select {
		case entry, ok := <-w.entries:
			if !ok {
				w.log.Debug("Log entries channel closed, stopping broadcast")
				return nil
			}
			w.Broadcast(entry)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping log broadcast")
			return nil
		}
	}
}

func (w *LogBroadcaster) Broadcast(entry domain.LogEntry) {
	if w.broadcasted && entry.Sequence < w.lastSequence {
		w.log.Warn("Out of order log entry skipped",
			"sequence", entry.Sequence, "last_sequence", w.lastSequence)
		return
	}
	w.lastSequence = entry.Sequence
	w.broadcasted = true
	w.broadcaster.Broadcast(domain.EventMessage, domain.NewMessageBroadcast(entry))
	w.metrics.Sequence(entry.Sequence)
	if !entry.ConsensusAt.IsZero() {
		lag := time.Since(entry.ConsensusAt)
		w.metrics.BroadcastLag(lag)
		w.log.Debug("Log entry broadcast", "sequence", entry.Sequence,
			"consensus_at", entry.ConsensusAt, "lag", lag)
	}
}

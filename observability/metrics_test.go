package observability

import (
	"chat-relay/domain"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.Outcome(domain.OutcomePublished, "")
	metrics.Outcome(domain.OutcomeRejected, "amount_mismatch")
	metrics.Outcome(domain.OutcomeRejected, "amount_mismatch")
	metrics.Connected()
	metrics.Connected()
	metrics.Disconnected()
	metrics.Sequence(42)
	metrics.ChannelFill("log_entries", 3, 4)
	metrics.ProcessStats(12.5, 2048)
	metrics.BroadcastLag(300 * time.Millisecond)

	req.Equal(1.0, testutil.ToFloat64(metrics.outcomes.WithLabelValues("published", "")))
	req.Equal(2.0, testutil.ToFloat64(metrics.outcomes.WithLabelValues("rejected", "amount_mismatch")))
	req.Equal(1.0, testutil.ToFloat64(metrics.connections))
	req.Equal(42.0, testutil.ToFloat64(metrics.lastSequence))
	req.Equal(3.0, testutil.ToFloat64(metrics.channelLength.WithLabelValues("log_entries")))
	req.Equal(4.0, testutil.ToFloat64(metrics.channelCapacity.WithLabelValues("log_entries")))
	req.Equal(12.5, testutil.ToFloat64(metrics.processCPU))
	req.Equal(2048.0, testutil.ToFloat64(metrics.processRSS))
	req.Equal(1, testutil.CollectAndCount(metrics.broadcastLag))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	metrics.Outcome(domain.OutcomeDuplicate, "")
	metrics.Broadcast(domain.EventMessage)
	metrics.DroppedFrame()
	metrics.Connected()
	metrics.SubscriptionError()
	metrics.Sequence(1)
	metrics.ChannelFill("log_entries", 1, 1)
	metrics.ProcessStats(1, 1)
	metrics.BroadcastLag(time.Second)
}

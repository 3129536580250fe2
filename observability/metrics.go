package observability

import (
	"chat-relay/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the relay counters exposed on /metrics.
// A nil *Metrics records nothing.
type Metrics struct {
	outcomes           *prometheus.CounterVec
	broadcasts         *prometheus.CounterVec
	droppedFrames      prometheus.Counter
	connections        prometheus.Gauge
	subscriptionErrors prometheus.Counter
	lastSequence       prometheus.Gauge
	channelLength      *prometheus.GaugeVec
	channelCapacity    *prometheus.GaugeVec
	processCPU         prometheus.Gauge
	processRSS         prometheus.Gauge
	broadcastLag       prometheus.Histogram
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "inbound_outcomes_total",
			Help:      "Inbound messages by terminal state and reason.",
		}, []string{"outcome", "reason"}),
		broadcasts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "broadcasts_total",
			Help:      "Events broadcast to connected clients.",
		}, []string{"event"}),
		droppedFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "dropped_frames_total",
			Help:      "Frames dropped because a client buffer was full.",
		}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "connections",
			Help:      "Currently connected clients.",
		}),
		subscriptionErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "subscription_errors_total",
			Help:      "Consensus log subscription failures.",
		}),
		lastSequence: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "last_broadcast_sequence",
			Help:      "Sequence number of the last log entry broadcast.",
		}),
		channelLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "channel_length",
			Help:      "Items waiting in an internal channel.",
		}, []string{"channel"}),
		channelCapacity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "channel_capacity",
			Help:      "Buffer size of an internal channel.",
		}, []string{"channel"}),
		processCPU: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "process_cpu_percent",
			Help:      "CPU usage of the relay process, sampled by the heartbeat.",
		}),
		processRSS: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay",
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the relay process, sampled by the heartbeat.",
		}),
		broadcastLag: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "relay",
			Name:      "broadcast_lag_seconds",
			Help:      "Time from consensus to broadcast of a log entry.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Metrics) Outcome(outcome domain.Outcome, reason string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(string(outcome), reason).Inc()
}

func (m *Metrics) Broadcast(event string) {
	if m == nil {
		return
	}
	m.broadcasts.WithLabelValues(event).Inc()
}

func (m *Metrics) DroppedFrame() {
	if m == nil {
		return
	}
	m.droppedFrames.Inc()
}

func (m *Metrics) Connected() {
	if m == nil {
		return
	}
	m.connections.Inc()
}

func (m *Metrics) Disconnected() {
	if m == nil {
		return
	}
	m.connections.Dec()
}

func (m *Metrics) SubscriptionError() {
	if m == nil {
		return
	}
	m.subscriptionErrors.Inc()
}

func (m *Metrics) Sequence(sequence uint64) {
	if m == nil {
		return
	}
	m.lastSequence.Set(float64(sequence))
}

func (m *Metrics) BroadcastLag(lag time.Duration) {
	if m == nil {
		return
	}
	m.broadcastLag.Observe(lag.Seconds())
}

func (m *Metrics) ChannelFill(name string, length, capacity int) {
	if m == nil {
		return
	}
	m.channelLength.WithLabelValues(name).Set(float64(length))
	m.channelCapacity.WithLabelValues(name).Set(float64(capacity))
}

func (m *Metrics) ProcessStats(cpuPercent float64, rssBytes uint64) {
	if m == nil {
		return
	}
	m.processCPU.Set(cpuPercent)
	m.processRSS.Set(float64(rssBytes))
}

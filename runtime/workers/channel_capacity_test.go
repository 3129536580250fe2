package workers

import (
	"chat-relay/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gauge(t *testing.T, registry *prometheus.Registry, name, channel string) float64 {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "channel" && label.GetValue() == channel {
					return metric.GetGauge().GetValue()
				}
			}
		}
	}
	require.FailNow(t, "metric not found", "%s{channel=%q}", name, channel)
	return 0
}

func TestChannelCapacityWorker_Sample(t *testing.T) {
	req := require.New(t)
	registry := prometheus.NewRegistry()
	entries := make(chan int, 4)
	entries <- 1
	entries <- 2
	entries <- 3

	worker := NewChannelCapacityWorker(logs.GetLoggerFromLevel(slog.LevelDebug),
		[]NamedChannel{{Name: "log_entries", Channel: entries}, {Name: "not_a_channel", Channel: 42}},
		observability.NewMetrics(registry), time.Second, 0.5)
	worker.sample()

	req.Equal(3.0, gauge(t, registry, "relay_channel_length", "log_entries"))
	req.Equal(4.0, gauge(t, registry, "relay_channel_capacity", "log_entries"))
}

func TestChannelCapacityWorker_StopsOnContext(t *testing.T) {
	req := require.New(t)
	worker := NewChannelCapacityWorker(logs.GetLoggerFromLevel(slog.LevelDebug),
		nil, nil, time.Millisecond, 0.8)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req.NoError(worker.Run(ctx))
}

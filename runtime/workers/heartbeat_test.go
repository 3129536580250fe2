package workers

import (
	"chat-relay/observability"
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatWorker_Beat(t *testing.T) {
	req := require.New(t)
	registry := prometheus.NewRegistry()
	p, err := process.NewProcess(int32(os.Getpid()))
	req.NoError(err)

	polled := 0
	worker := NewHeartbeatWorker(logs.GetLoggerFromLevel(slog.LevelDebug), 0,
		func() int { polled++; return 3 }, observability.NewMetrics(registry))
	worker.beat(p)

	// Then the connection count was read and the process gauges are set
	req.Equal(1, polled)
	families, err := registry.Gather()
	req.NoError(err)
	var rss float64
	for _, family := range families {
		if family.GetName() == "relay_process_rss_bytes" {
			rss = family.GetMetric()[0].GetGauge().GetValue()
		}
	}
	req.Positive(rss)
}

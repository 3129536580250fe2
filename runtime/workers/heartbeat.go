package workers

import (
	"chat-relay/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker samples the relay's own process and connection count at a fixed interval.
type HeartbeatWorker struct {
	log         *slog.Logger
	interval    time.Duration
	connections func() int
	metrics     *observability.Metrics
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration,
	connections func() int, metrics *observability.Metrics) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, connections: connections, metrics: metrics}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	w.metrics.ProcessStats(cpu, rss)
	w.log.Debug("Relay heartbeat",
		"pid", p.Pid,
		"status", status,
		"cpu_percent", cpu,
		"rss_bytes", rss,
		"connections", w.connections())
}

// selfStats retrieves memory, CPU and OS status of the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}

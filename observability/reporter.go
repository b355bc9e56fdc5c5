// Package observability reports process self-telemetry. Prometheus
// covers request-level metrics; the reporter covers the process itself
// (CPU, RSS, GC) so a degrading deployment shows up in the logs.
package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatsFunc supplies application-level values to include in each report.
type StatsFunc func() map[string]any

type Reporter struct {
	log      *slog.Logger
	interval time.Duration
	stats    StatsFunc
}

func NewReporter(log *slog.Logger, interval time.Duration, stats StatsFunc) *Reporter {
	return &Reporter{log: log, interval: interval, stats: stats}
}

// Run emits one telemetry report per interval until the context is
// canceled.
func (r *Reporter) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.report(p)
		}
	}
}

func (r *Reporter) report(p *process.Process) {
	args := make([]any, 0, 12)

	if cpu, err := p.CPUPercent(); err == nil {
		args = append(args, "cpu_percent", cpu)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		args = append(args, "rss_mb", mem.RSS/1024/1024)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	args = append(args,
		"alloc_mb", ms.Alloc/1024/1024,
		"num_gc", ms.NumGC,
		"goroutines", runtime.NumGoroutine())

	if r.stats != nil {
		for key, value := range r.stats() {
			args = append(args, key, value)
		}
	}

	r.log.Info("telemetry", args...)
}

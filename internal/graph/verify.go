package graph

import (
	"context"
	"fmt"

	"github.com/Sword-zgz/deeplearning4j/internal/config"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Mismatch records a tensor whose checksum changed with the worker count.
type Mismatch struct {
	Node     string
	Fill     int
	Workers  int
	Want     uint64
	Got      uint64
	Baseline int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("node %s fill %d: %d workers gave %016x, %d workers gave %016x",
		m.Node, m.Fill, m.Workers, m.Got, m.Baseline, m.Want)
}

// Verify fills the graph once per worker count and compares checksums
// against the first count. Time-based seeds are resolved once up front so
// every pass sees the same stream.
func Verify(ctx context.Context, cfg *config.GraphConfig, workerCounts []int, logger *log.Logger, clock quartz.Clock) ([]Mismatch, error) {
	if len(workerCounts) == 0 {
		return nil, fmt.Errorf("no worker counts to verify")
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	pinned := clock.Now().UnixMilli()

	var (
		baseline   map[string]uint64
		mismatches []Mismatch
	)
	for _, workers := range workerCounts {
		if workers < 1 {
			return nil, fmt.Errorf("worker count must be positive, got %d", workers)
		}

		runner := NewRunner(cfg,
			WithLogger(logger),
			WithClock(clock),
			WithWorkers(workers),
			withPinnedMillis(pinned))
		results, err := runner.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("run with %d workers: %w", workers, err)
		}

		sums := make(map[string]uint64, len(results))
		for _, res := range results {
			sums[resultKey(res)] = res.Checksum
		}
		if baseline == nil {
			baseline = sums
			continue
		}

		for _, res := range results {
			want := baseline[resultKey(res)]
			if res.Checksum != want {
				mismatches = append(mismatches, Mismatch{
					Node:     res.Node,
					Fill:     res.Fill,
					Workers:  workers,
					Want:     want,
					Got:      res.Checksum,
					Baseline: workerCounts[0],
				})
			}
		}
		runner.logger.Info("verified worker count", "workers", workers, "tensors", len(results))
	}
	return mismatches, nil
}

func resultKey(r Result) string {
	return fmt.Sprintf("%s/%d", r.Node, r.Fill)
}

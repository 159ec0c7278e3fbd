// Package graph runs the random nodes described by a graph configuration.
// Each node owns one generator; its fills are produced back to back with a
// rehash-advance between them, so a node with several fills yields several
// unrelated tensors that still replay exactly.
package graph

import (
	"context"
	"fmt"
	"io"

	"github.com/Sword-zgz/deeplearning4j/internal/config"
	"github.com/Sword-zgz/deeplearning4j/internal/fill"
	"github.com/Sword-zgz/deeplearning4j/internal/statistics"
	"github.com/Sword-zgz/deeplearning4j/random"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Result is one filled tensor. Exactly one of Floats and Ints is set.
type Result struct {
	Node      string
	Op        string
	Fill      int
	RootState uint64
	NodeState uint64
	Summary   statistics.Summary
	Checksum  uint64
	Floats    []float32
	Ints      []int64
}

// Len returns the number of elements in the tensor.
func (r *Result) Len() int {
	if r.Ints != nil {
		return len(r.Ints)
	}
	return len(r.Floats)
}

// Runner executes graph nodes.
type Runner struct {
	cfg    *config.GraphConfig
	pool   *fill.Pool
	logger *log.Logger
	clock  quartz.Clock

	workers int

	// pinnedMillis, when non-zero, replaces the clock for time-based nodes.
	pinnedMillis int64
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger. The fill pool logs through it too.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the clock used to resolve time-based seeds.
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithWorkers overrides the configured worker count.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

func withPinnedMillis(ms int64) Option {
	return func(r *Runner) {
		r.pinnedMillis = ms
	}
}

// NewRunner creates a runner for cfg. cfg is assumed to be validated.
func NewRunner(cfg *config.GraphConfig, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
		workers: cfg.Graph.Workers,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.pool = fill.NewPool(
		fill.WithWorkers(r.workers),
		fill.WithChunkSize(r.cfg.Graph.ChunkSize),
		fill.WithLogger(r.logger))
	return r
}

// Run fills every node in configuration order.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, n := range r.cfg.Nodes {
		nodeResults, err := r.RunNode(ctx, n)
		if err != nil {
			return nil, err
		}
		results = append(results, nodeResults...)
	}
	return results, nil
}

// RunNode fills one node. The generator is fully settled (seeded, rewound)
// before each fan-out and left untouched while workers read it.
func (r *Runner) RunNode(ctx context.Context, n config.NodeConfig) ([]Result, error) {
	seed := r.seedFor(n)
	if seed.IsTimeBased() {
		r.logger.Warn("node has no seed, using wall clock", "node", n.Name)
	}
	g := random.New(seed, random.WithClock(r.clock))

	results := make([]Result, 0, n.Fills)
	for f := 0; f < n.Fills; f++ {
		if f > 0 {
			g.RewindH()
		}

		res := Result{
			Node:      n.Name,
			Op:        n.Op,
			Fill:      f,
			RootState: g.RootState(),
			NodeState: g.NodeState(),
		}
		if err := r.fillNode(ctx, g, n, &res); err != nil {
			return nil, fmt.Errorf("node %s fill %d: %w", n.Name, f, err)
		}

		r.logger.Debug("filled tensor",
			"node", n.Name,
			"op", n.Op,
			"fill", f,
			"elements", res.Len(),
			"checksum", fmt.Sprintf("%016x", res.Checksum))
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) fillNode(ctx context.Context, g *random.Generator, n config.NodeConfig, res *Result) error {
	if n.Op == config.OpIntegers {
		dst := make([]int64, n.Size)
		if err := fill.Integers(ctx, r.pool, g, dst, int64(n.From), int64(n.To)); err != nil {
			return err
		}
		res.Ints = dst
		res.Summary = statistics.Summarize(dst)
		res.Checksum = statistics.Checksum(dst)
		return nil
	}

	dst := make([]float32, n.Size)
	var err error
	switch n.Op {
	case config.OpUniform:
		err = fill.Uniform(ctx, r.pool, g, dst, float32(n.From), float32(n.To))
	case config.OpNormal:
		err = fill.Normal(ctx, r.pool, g, dst, float32(n.Mean), float32(n.StdDev))
	case config.OpTruncatedNormal:
		err = fill.TruncatedNormal(ctx, r.pool, g, dst, float32(n.Mean), float32(n.StdDev))
	case config.OpBernoulli:
		err = fill.Bernoulli(ctx, r.pool, g, dst, n.P)
	case config.OpDropout:
		for i := range dst {
			dst[i] = 1
		}
		err = fill.Dropout(ctx, r.pool, g, dst, n.P)
	case config.OpXavier:
		err = fill.XavierUniform(ctx, r.pool, g, dst, n.FanIn, n.FanOut)
	default:
		err = fmt.Errorf("unknown op %q", n.Op)
	}
	if err != nil {
		return err
	}

	res.Floats = dst
	res.Summary = statistics.Summarize(dst)
	res.Checksum = statistics.Checksum(dst)
	return nil
}

func (r *Runner) seedFor(n config.NodeConfig) random.Seed {
	seed := r.cfg.Seed(n)
	if seed.IsTimeBased() && r.pinnedMillis != 0 {
		return random.Seeded(r.pinnedMillis, 0)
	}
	return seed
}

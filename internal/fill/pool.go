// Package fill writes generator output into tensors. Each op splits the
// element range into chunks and hands them to a fixed set of workers; since
// every element is derived from its own index, the result does not depend on
// the worker count, the chunk size or the order chunks complete in.
package fill

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of elements a worker claims at a time.
const DefaultChunkSize = 4096

// Pool runs index-range work across goroutines. A Pool holds no per-run
// state and may be shared.
type Pool struct {
	workers   int
	chunkSize int
	logger    *log.Logger
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithChunkSize sets how many elements a worker claims at a time. Values
// below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// WithLogger sets the logger used for per-run debug output.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPool creates a pool. By default it uses GOMAXPROCS workers and
// DefaultChunkSize chunks, and logs nothing.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// ChunkSize returns the configured chunk size.
func (p *Pool) ChunkSize() int { return p.chunkSize }

// Run calls fn over disjoint [start, end) ranges covering [0, n). Chunks are
// claimed dynamically; fn must only touch elements inside its range.
// Cancelling ctx stops workers before their next chunk.
func (p *Pool) Run(ctx context.Context, n int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	chunks := (n + p.chunkSize - 1) / p.chunkSize
	workers := min(p.workers, chunks)
	started := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	var next atomic.Int64
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				c := int(next.Add(1) - 1)
				if c >= chunks {
					return nil
				}
				start := c * p.chunkSize
				fn(start, min(start+p.chunkSize, n))
			}
		})
	}

	err := g.Wait()
	p.logger.Debug("fill finished",
		"elements", n,
		"chunks", chunks,
		"workers", workers,
		"duration", time.Since(started),
		"err", err)
	return err
}

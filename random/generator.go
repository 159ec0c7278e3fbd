package random

import (
	"github.com/Sword-zgz/deeplearning4j/internal/randutil"
	"github.com/coder/quartz"
)

// defaultNodeState replaces a node state that derives to zero. Zero is the
// fixed point of the lane step, so RewindH would never move away from it.
const defaultNodeState = 1298567341

// Generator is an index-keyed PRNG. See the package documentation for the
// concurrency contract.
type Generator struct {
	rootState uint64
	nodeState uint64
}

// Option configures construction of a Generator.
type Option func(*options)

type options struct {
	clock quartz.Clock
}

// WithClock sets the clock consulted by time-based seeds. Tests pass a
// quartz mock here.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// New creates a generator. An explicit seed yields a fully deterministic
// stream; a time-based seed uses the current wall-clock milliseconds as the
// root seed and zero as the node seed.
func New(seed Seed, opts ...Option) *Generator {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, node := seed.root, seed.node
	if seed.IsTimeBased() {
		if cfg.clock == nil {
			cfg.clock = quartz.NewReal()
		}
		root, node = cfg.clock.Now().UnixMilli(), 0
	}

	g := &Generator{}
	g.SetStates(root, node)
	return g
}

// SetStates reseeds the generator. The root state is overwritten and the node
// state recomputed exactly as New would for the same pair. Values derived
// before the call belong to the old stream.
func (g *Generator) SetStates(rootSeed, nodeSeed int64) {
	g.rootState = uint64(rootSeed)
	g.nodeState = deriveNodeState(uint64(rootSeed), uint64(nodeSeed))
}

// RootState returns the graph-level state word.
func (g *Generator) RootState() uint64 { return g.rootState }

// NodeState returns the node-level state word.
func (g *Generator) NodeState() uint64 { return g.nodeState }

// RelativeInt returns a uniformly distributed uint32 for the element at
// index. It depends only on the node state and index; it never changes the
// generator and is safe to call from many goroutines at once.
func (g *Generator) RelativeInt(index int64) uint32 {
	lo, _ := g.lanes(index)
	return lo
}

// RelativeLong returns a uniformly distributed uint64 for the element at
// index. Its low 32 bits equal RelativeInt(index).
func (g *Generator) RelativeLong(index int64) uint64 {
	return randutil.Join(g.lanes(index))
}

// RewindH advances the node state by one generation. Fills that follow draw
// from a stream unrelated to the one before the call.
func (g *Generator) RewindH() {
	g.nodeState = randutil.StepWord(g.nodeState)
}

// Rewind applies RewindH steps times. Non-positive steps do nothing.
func (g *Generator) Rewind(steps int) {
	for i := 0; i < steps; i++ {
		g.RewindH()
	}
}

// lanes runs the index-keyed mix: position index of a splitmix64 stream
// keyed by the node state, one xoroshiro64 step across its lanes, then the
// ** scrambler on each lane.
func (g *Generator) lanes(index int64) (uint32, uint32) {
	x := randutil.Mix64(g.nodeState + (uint64(index)+1)*randutil.GoldenRatio64)
	s0, s1 := randutil.Step(randutil.Lanes(x))
	return randutil.Scramble(s0), randutil.Scramble(s1)
}

func deriveNodeState(root, node uint64) uint64 {
	state := randutil.Mix64(root ^ randutil.Mix64(node+randutil.GoldenRatio64))
	if state == 0 {
		return defaultNodeState
	}
	return state
}

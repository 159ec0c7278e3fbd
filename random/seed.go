package random

import "fmt"

type seedKind uint8

const (
	seedExplicit seedKind = iota
	seedTimeBased
)

// Seed selects how a Generator is initialised. The zero value is an explicit
// (0, 0) seed; use SeedFrom to get the "no seed supplied" behaviour.
type Seed struct {
	kind seedKind
	root int64
	node int64
}

// Seeded returns an explicit seed pair. Generators built from equal pairs
// produce identical streams.
func Seeded(root, node int64) Seed {
	return Seed{kind: seedExplicit, root: root, node: node}
}

// TimeBased returns a seed that is resolved from the wall clock, in
// milliseconds, when the generator is constructed. It is the only source of
// non-determinism in this package.
func TimeBased() Seed {
	return Seed{kind: seedTimeBased}
}

// SeedFrom maps raw integer seeds to a Seed: both zero means no seed was
// supplied and selects TimeBased, anything else is Seeded.
func SeedFrom(root, node int64) Seed {
	if root == 0 && node == 0 {
		return TimeBased()
	}
	return Seeded(root, node)
}

// IsTimeBased reports whether the seed will be resolved from the clock.
func (s Seed) IsTimeBased() bool {
	return s.kind == seedTimeBased
}

// Root returns the explicit root seed. It is zero for time-based seeds.
func (s Seed) Root() int64 { return s.root }

// Node returns the explicit node seed. It is zero for time-based seeds.
func (s Seed) Node() int64 { return s.node }

func (s Seed) String() string {
	if s.kind == seedTimeBased {
		return "time-based"
	}
	return fmt.Sprintf("seeded(root=%d, node=%d)", s.root, s.node)
}

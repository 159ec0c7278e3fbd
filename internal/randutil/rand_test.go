package randutil

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []uint64{0, 1, 0xdeadbeef, 0xffffffff00000000, GoldenRatio64} {
		assert.Equal(t, x, Join(Lanes(x)))
	}
}

func TestStepHasNoShortCycles(t *testing.T) {
	t.Parallel()

	start := uint64(1298567341)
	seen := make(map[uint64]struct{}, 10000)
	x := start
	for i := 0; i < 10000; i++ {
		_, dup := seen[x]
		require.False(t, dup, "state repeated after %d steps", i)
		seen[x] = struct{}{}
		x = StepWord(x)
		require.NotZero(t, x)
	}
}

func TestStepFixedPointIsZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), StepWord(0))
}

func TestMix64Avalanche(t *testing.T) {
	t.Parallel()

	// Flipping one input bit should flip roughly half the output bits.
	var total int
	const trials = 64
	for bit := 0; bit < trials; bit++ {
		a := Mix64(42)
		b := Mix64(42 ^ (1 << bit))
		total += bits.OnesCount64(a ^ b)
	}
	avg := float64(total) / trials
	assert.InDelta(t, 32, avg, 4)
}

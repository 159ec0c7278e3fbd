// Package randutil holds the bit mixing primitives shared by the index-keyed
// generator. Everything here is a pure function of its arguments.
package randutil

import "math/bits"

const (
	// GoldenRatio64 is the splitmix64 stream increment.
	GoldenRatio64 = 0x9e3779b97f4a7c15

	laneMultiplier = 0x9e3779bb
)

// Mix64 is the splitmix64 finalizer. It is a bijection on uint64 with full
// avalanche, so distinct inputs never collide.
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Lanes splits a state word into its low and high 32-bit lanes.
func Lanes(x uint64) (s0, s1 uint32) {
	return uint32(x), uint32(x >> 32)
}

// Join is the inverse of Lanes.
func Join(s0, s1 uint32) uint64 {
	return uint64(s1)<<32 | uint64(s0)
}

// Step applies one xoroshiro64 state transition to a pair of lanes. The
// transition is linear and invertible; the only fixed point is (0, 0).
func Step(s0, s1 uint32) (uint32, uint32) {
	s1 ^= s0
	return bits.RotateLeft32(s0, 26) ^ s1 ^ (s1 << 9), bits.RotateLeft32(s1, 13)
}

// StepWord is Step over a packed state word.
func StepWord(x uint64) uint64 {
	return Join(Step(Lanes(x)))
}

// Scramble is the xoroshiro64** output function for a single lane.
func Scramble(s uint32) uint32 {
	return bits.RotateLeft32(s*laneMultiplier, 5) * 5
}

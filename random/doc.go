// Package random provides an index-addressable pseudo-random generator for
// filling tensors from many goroutines at once.
//
// A Generator carries two 64-bit state words: a graph-level root state and a
// node-level state derived from the (root, node) seed pair. Values are pure
// functions of the node state and the requested element index, so workers
// may fill disjoint index ranges in any order and still produce exactly what
// a single sequential pass would have produced.
//
//	g := random.New(random.Seeded(42, 7))
//	v := g.RelativeInt(1000)                       // same value on every run
//	w := random.RelativeFloat(g, 3, -1.0, 1.0)     // in [-1, 1)
//	g.RewindH()                                    // next fill draws from a fresh stream
//
// Derivation methods never mutate the generator. SetStates, RewindH and
// Rewind do, and must not run concurrently with anything else on the same
// instance. Settle the state before handing the generator to workers.
//
// The generator is a statistical PRNG. It is not suitable for cryptographic
// use.
package random

package random

import rand "math/rand/v2"

// Source adapts a Generator to rand.Source by walking indices start,
// start+1, ... . The cursor belongs to the Source; the generator itself stays
// read-only, so several Sources may share one generator.
type Source struct {
	g    *Generator
	next int64
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source positioned at start.
func NewSource(g *Generator, start int64) *Source {
	return &Source{g: g, next: start}
}

// Uint64 returns RelativeLong at the current index and advances.
func (s *Source) Uint64() uint64 {
	v := s.g.RelativeLong(s.next)
	s.next++
	return v
}

// Index returns the index the next call will read.
func (s *Source) Index() int64 { return s.next }

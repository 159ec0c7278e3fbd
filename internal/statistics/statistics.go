// Package statistics summarises filled tensors: moments, a uniformity
// histogram and a content checksum used to compare runs.
package statistics

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Number is any element type a tensor may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Summary tracks running moments of a sample
type Summary struct {
	Count int
	Sum   float64
	SumSq float64 // Sum of squares for variance calculation
	Min   float64
	Max   float64
}

// Summarize builds a Summary over values
func Summarize[T Number](values []T) Summary {
	var s Summary
	for _, v := range values {
		s.Add(float64(v))
	}
	return s
}

// Add incorporates one observation
func (s *Summary) Add(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.SumSq += v * v
}

// Merge folds another summary into s. Merging per-worker summaries gives
// the same moments as a single pass, up to float rounding.
func (s *Summary) Merge(o Summary) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 {
		*s = o
		return
	}
	s.Count += o.Count
	s.Sum += o.Sum
	s.SumSq += o.SumSq
	s.Min = math.Min(s.Min, o.Min)
	s.Max = math.Max(s.Max, o.Max)
}

// Mean returns the arithmetic mean
func (s *Summary) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance
func (s *Summary) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Summary) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating between neighbours.
func Percentile[T Number](values []T, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Histogram counts observations in equal-width buckets over [Lo, Hi).
type Histogram struct {
	Lo, Hi  float64
	Counts  []int
	Outside int // observations outside [Lo, Hi)
}

// NewHistogram creates a histogram with n buckets.
func NewHistogram(lo, hi float64, n int) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bucket count must be positive, got %d", n)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("invalid histogram range [%v, %v)", lo, hi)
	}
	return &Histogram{Lo: lo, Hi: hi, Counts: make([]int, n)}, nil
}

// Add records one observation
func (h *Histogram) Add(v float64) {
	if v < h.Lo || v >= h.Hi || math.IsNaN(v) {
		h.Outside++
		return
	}
	b := int((v - h.Lo) / (h.Hi - h.Lo) * float64(len(h.Counts)))
	if b >= len(h.Counts) {
		b = len(h.Counts) - 1
	}
	h.Counts[b]++
}

// Total returns the number of in-range observations
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// ChiSquare returns Pearson's statistic against a uniform expectation over
// the buckets. Degrees of freedom are len(Counts)-1.
func (h *Histogram) ChiSquare() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(h.Counts))
	var chi float64
	for _, c := range h.Counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// Checksum hashes the little-endian encoding of values. Equal tensors hash
// equal regardless of how they were filled.
func Checksum[T Number](values []T) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		n := PutLittleEndian(buf[:], v)
		d.Write(buf[:n])
	}
	return d.Sum64()
}

// PutLittleEndian encodes v into buf using its natural width and returns the
// number of bytes written. buf must hold at least 8 bytes.
func PutLittleEndian[T Number](buf []byte, v T) int {
	size := int(unsafe.Sizeof(v))
	if T(1)/2 != 0 {
		if size == 4 {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
		} else {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(float64(v)))
		}
		return size
	}

	bits := uint64(v)
	switch size {
	case 1:
		buf[0] = byte(bits)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(bits))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(bits))
	default:
		binary.LittleEndian.PutUint64(buf, bits)
	}
	return size
}

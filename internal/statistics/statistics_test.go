package statistics

import (
	"math"
	"testing"
)

func TestSummary_Empty(t *testing.T) {
	var s Summary

	if s.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty summary, got %f", s.Mean())
	}
	if s.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty summary, got %f", s.Variance())
	}
	if s.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty summary, got %f", s.StdError())
	}
	if Percentile([]float64{}, 0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty input")
	}
}

func TestSummary_Moments(t *testing.T) {
	s := Summarize([]int{2, 4, 4, 4, 5, 5, 7, 9})

	if s.Count != 8 {
		t.Fatalf("Expected count 8, got %d", s.Count)
	}
	if s.Mean() != 5 {
		t.Errorf("Expected mean 5, got %f", s.Mean())
	}
	// Sample variance: sum of squared deviations 32 over 7.
	if math.Abs(s.Variance()-32.0/7.0) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", 32.0/7.0, s.Variance())
	}
	if s.Min != 2 || s.Max != 9 {
		t.Errorf("Expected min/max 2/9, got %v/%v", s.Min, s.Max)
	}

	lo, hi := s.ConfidenceInterval95()
	if !(lo < s.Mean() && s.Mean() < hi) {
		t.Errorf("Expected mean inside CI, got [%f, %f]", lo, hi)
	}
}

func TestSummary_MergeMatchesSinglePass(t *testing.T) {
	values := []float64{-3, 1.5, 2, 8, 0.25, -1, 4}
	whole := Summarize(values)

	var merged Summary
	merged.Merge(Summarize(values[:3]))
	merged.Merge(Summary{})
	merged.Merge(Summarize(values[3:]))

	if merged.Count != whole.Count || merged.Min != whole.Min || merged.Max != whole.Max {
		t.Fatalf("merged summary %+v differs from %+v", merged, whole)
	}
	if math.Abs(merged.Mean()-whole.Mean()) > 1e-12 {
		t.Errorf("Expected mean %f, got %f", whole.Mean(), merged.Mean())
	}
	if math.Abs(merged.Variance()-whole.Variance()) > 1e-9 {
		t.Errorf("Expected variance %f, got %f", whole.Variance(), merged.Variance())
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.5, 3},
		{1, 5},
		{0.25, 2},
		{0.125, 1.5},
	}
	for _, tt := range tests {
		if got := Percentile(values, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestHistogram(t *testing.T) {
	h, err := NewHistogram(0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{0, 0.1, 0.3, 0.55, 0.99, 1, -0.1, math.NaN()} {
		h.Add(v)
	}

	want := []int{2, 1, 1, 1}
	for i, c := range want {
		if h.Counts[i] != c {
			t.Errorf("bucket %d: got %d, want %d", i, h.Counts[i], c)
		}
	}
	if h.Outside != 3 {
		t.Errorf("Expected 3 outside observations, got %d", h.Outside)
	}
	if h.Total() != 5 {
		t.Errorf("Expected total 5, got %d", h.Total())
	}
}

func TestHistogram_ChiSquare(t *testing.T) {
	h, _ := NewHistogram(0, 4, 4)
	for i := 0; i < 100; i++ {
		h.Add(float64(i % 4))
	}
	if h.ChiSquare() != 0 {
		t.Errorf("Expected chi-square 0 for perfectly uniform counts, got %f", h.ChiSquare())
	}

	skewed, _ := NewHistogram(0, 4, 4)
	for i := 0; i < 100; i++ {
		skewed.Add(0.5)
	}
	// All 100 in one of four buckets: 3*25 + 75^2/25 = 300.
	if math.Abs(skewed.ChiSquare()-300) > 1e-9 {
		t.Errorf("Expected chi-square 300, got %f", skewed.ChiSquare())
	}
}

func TestNewHistogram_Invalid(t *testing.T) {
	if _, err := NewHistogram(0, 1, 0); err == nil {
		t.Error("Expected error for zero buckets")
	}
	if _, err := NewHistogram(1, 1, 4); err == nil {
		t.Error("Expected error for empty range")
	}
}

func TestChecksum(t *testing.T) {
	a := []float32{0.5, -1, 3.25}
	b := []float32{0.5, -1, 3.25}
	c := []float32{0.5, -1, 3.5}

	if Checksum(a) != Checksum(b) {
		t.Error("Expected equal tensors to hash equal")
	}
	if Checksum(a) == Checksum(c) {
		t.Error("Expected different tensors to hash differently")
	}
	if Checksum([]int32{1, 2}) == Checksum([]int32{2, 1}) {
		t.Error("Expected checksum to depend on order")
	}
}

func TestPutLittleEndian(t *testing.T) {
	buf := make([]byte, 8)

	if n := PutLittleEndian(buf, int8(-1)); n != 1 || buf[0] != 0xff {
		t.Errorf("int8: n=%d buf=%x", n, buf[:1])
	}
	if n := PutLittleEndian(buf, uint16(0x0102)); n != 2 || buf[0] != 0x02 || buf[1] != 0x01 {
		t.Errorf("uint16: n=%d buf=%x", n, buf[:2])
	}
	if n := PutLittleEndian(buf, float32(1)); n != 4 || buf[3] != 0x3f || buf[2] != 0x80 {
		t.Errorf("float32: n=%d buf=%x", n, buf[:4])
	}
	if n := PutLittleEndian(buf, int64(-2)); n != 8 || buf[0] != 0xfe || buf[7] != 0xff {
		t.Errorf("int64: n=%d buf=%x", n, buf)
	}
}

package fill

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/Sword-zgz/deeplearning4j/random"
)

// truncationRetries bounds how many redraws TruncatedNormal makes before
// clamping.
const truncationRetries = 8

// Uniform fills dst with values in [from, to).
func Uniform[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, from, to T) error {
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = random.RelativeFloat(g, int64(i), from, to)
		}
	})
}

// Integers fills dst with integers in [from, to).
func Integers[T random.Integer](ctx context.Context, p *Pool, g *random.Generator, dst []T, from, to T) error {
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = random.RelativeInteger(g, int64(i), from, to)
		}
	})
}

// Normal fills dst with normally distributed values. Element i consumes
// indices 2i and 2i+1 through the Box-Muller transform.
func Normal[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, mean, stddev T) error {
	if !(stddev >= 0) {
		return fmt.Errorf("normal: stddev %v: %w", stddev, ErrInvalidStdDev)
	}
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = mean + stddev*T(gaussian(g, int64(i)))
		}
	})
}

// TruncatedNormal fills dst with normal values restricted to two standard
// deviations of the mean. A rejected draw for element i is retried at
// element offset i + k*len(dst); after truncationRetries the value is
// clamped.
func TruncatedNormal[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, mean, stddev T) error {
	if !(stddev >= 0) {
		return fmt.Errorf("truncated normal: stddev %v: %w", stddev, ErrInvalidStdDev)
	}
	n := int64(len(dst))
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			var z float64
			for k := int64(0); k < truncationRetries; k++ {
				z = gaussian(g, int64(i)+k*n)
				if math.Abs(z) <= 2 {
					break
				}
			}
			z = max(-2, min(2, z))
			dst[i] = mean + stddev*T(z)
		}
	})
}

// Bernoulli fills dst with 1 where the draw falls below prob and 0 elsewhere.
func Bernoulli[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, prob float64) error {
	if !(prob >= 0 && prob <= 1) {
		return fmt.Errorf("bernoulli: p=%v: %w", prob, ErrInvalidProbability)
	}
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if random.RelativeFloat(g, int64(i), 0.0, 1.0) < prob {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
	})
}

// Dropout zeroes each element of dst in place with probability prob and
// scales the survivors by 1/(1-prob), so the expected sum is unchanged.
func Dropout[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, prob float64) error {
	if !(prob >= 0 && prob < 1) {
		return fmt.Errorf("dropout: p=%v: %w", prob, ErrInvalidProbability)
	}
	scale := T(1 / (1 - prob))
	return p.Run(ctx, len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			if random.RelativeFloat(g, int64(i), 0.0, 1.0) < prob {
				dst[i] = 0
			} else {
				dst[i] *= scale
			}
		}
	})
}

// XavierUniform fills dst with Glorot-uniform weights for a layer with the
// given fan-in and fan-out.
func XavierUniform[T random.Float](ctx context.Context, p *Pool, g *random.Generator, dst []T, fanIn, fanOut int) error {
	if fanIn <= 0 || fanOut <= 0 {
		return fmt.Errorf("xavier: fanIn=%d fanOut=%d: %w", fanIn, fanOut, ErrInvalidFan)
	}
	limit := T(math.Sqrt(6 / float64(fanIn+fanOut)))
	return Uniform(ctx, p, g, dst, -limit, limit)
}

// Permutation returns a pseudo-random permutation of [0, n). Shuffling is
// inherently sequential, so it reads the generator through a Source cursor
// starting at index 0.
func Permutation(g *random.Generator, n int) []int {
	return rand.New(random.NewSource(g, 0)).Perm(n)
}

// gaussian returns a standard normal variate for element i.
func gaussian(g *random.Generator, i int64) float64 {
	// 1-u keeps u1 in (0, 1] so the log is finite.
	u1 := 1 - random.RelativeFloat(g, 2*i, 0.0, 1.0)
	u2 := random.RelativeFloat(g, 2*i+1, 0.0, 1.0)
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

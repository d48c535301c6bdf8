// Package pointgen produces deterministic point sets for hull tests and
// benchmarks.
//
// Goals:
//   - Determinism: same seed ⇒ identical points across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel builds.
package pointgen

import (
	"errors"
	"math"
	"math/rand"
)

// ErrInvalidShape is returned for negative counts or non-positive dimensions.
var ErrInvalidShape = errors.New("pointgen: invalid shape")

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from base and a
// stream identifier. base==nil uses defaultRNGSeed as the parent; otherwise
// base.Int63() is consumed once.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return RNGFromSeed(0)
	}

	return rng
}

// Uniform returns n points in [0, scale)^dim.
//
// Complexity: O(n·dim).
func Uniform(n, dim int, scale float64, rng *rand.Rand) ([][]float64, error) {
	if n < 0 || dim <= 0 {
		return nil, ErrInvalidShape
	}
	r := rngOrDefault(rng)
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for k := range pts[i] {
			pts[i][k] = scale * r.Float64()
		}
	}

	return pts, nil
}

// Sphere returns n points on the sphere of the given radius around the
// origin. Every point is a vertex of the hull of the set.
func Sphere(n, dim int, radius float64, rng *rand.Rand) ([][]float64, error) {
	if n < 0 || dim <= 0 {
		return nil, ErrInvalidShape
	}
	r := rngOrDefault(rng)
	pts := make([][]float64, 0, n)
	for len(pts) < n {
		p := make([]float64, dim)
		var norm float64
		for k := range p {
			p[k] = r.NormFloat64()
			norm += p[k] * p[k]
		}
		if norm == 0 {
			continue
		}
		f := radius / math.Sqrt(norm)
		for k := range p {
			p[k] *= f
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// Embedded returns n points of an affine subspace of dimension at most sub
// inside dim-space: an integer origin plus integer multiples of sub random
// integer directions. All coordinates are integers, so the points lie in
// the subspace exactly.
func Embedded(n, sub, dim int, scale float64, rng *rand.Rand) ([][]float64, error) {
	if n < 0 || dim <= 0 || sub < 0 || sub > dim {
		return nil, ErrInvalidShape
	}
	r := rngOrDefault(rng)
	origin := make([]float64, dim)
	for k := range origin {
		origin[k] = float64(r.Intn(int(scale) + 1))
	}
	dirs := make([][]float64, sub)
	for j := range dirs {
		dirs[j] = make([]float64, dim)
		for k := range dirs[j] {
			dirs[j][k] = float64(r.Intn(5) - 2)
		}
	}
	pts := make([][]float64, n)
	for i := range pts {
		p := append([]float64(nil), origin...)
		for _, d := range dirs {
			t := float64(r.Intn(int(scale) + 1))
			for k := range p {
				p[k] += t * d[k]
			}
		}
		pts[i] = p
	}

	return pts, nil
}

// Lattice returns n points whose coordinates are multiples of step in
// [0, levels·step), each perturbed by Gaussian noise of the given standard
// deviation. Small noise makes large groups of almost coplanar points.
func Lattice(n, dim, levels int, step, noise float64, rng *rand.Rand) ([][]float64, error) {
	if n < 0 || dim <= 0 || levels <= 0 || noise < 0 {
		return nil, ErrInvalidShape
	}
	r := rngOrDefault(rng)
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for k := range pts[i] {
			pts[i][k] = float64(r.Intn(levels))*step + noise*r.NormFloat64()
		}
	}

	return pts, nil
}

// Shuffle permutes pts in place with a Fisher–Yates pass.
// rng==nil uses the default deterministic stream.
func Shuffle(pts [][]float64, rng *rand.Rand) {
	if len(pts) <= 1 {
		return
	}
	r := rngOrDefault(rng)
	for i := len(pts) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"strconv"
	"strings"
)

// Vector is an immutable point or direction in R^n.
// The zero value is the 0-dimensional vector.
type Vector struct {
	c []float64
}

// New returns a vector holding a copy of values.
func New(values ...float64) Vector {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of values; later writes to
// values do not affect the vector.
func FromSlice(values []float64) Vector {
	c := make([]float64, len(values))
	copy(c, values)

	return Vector{c: c}
}

// Zero returns the n-dimensional zero vector.
func Zero(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{c: make([]float64, n)}
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.c) }

// At returns component i, or ErrIndexOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.c) {
		return 0, ErrIndexOutOfRange
	}

	return v.c[i], nil
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)

	return out
}

// Sum returns v + o.
func (v Vector) Sum(o Vector) (Vector, error) {
	if len(v.c) != len(o.c) {
		return Vector{}, mismatch(opSum, len(v.c), len(o.c))
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] + o.c[i]
	}

	return Vector{c: out}, nil
}

// Difference returns v - o.
func (v Vector) Difference(o Vector) (Vector, error) {
	if len(v.c) != len(o.c) {
		return Vector{}, mismatch(opDifference, len(v.c), len(o.c))
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] - o.c[i]
	}

	return Vector{c: out}, nil
}

// AddScaled returns v + f*o in a single pass.
func (v Vector) AddScaled(o Vector, f float64) (Vector, error) {
	if len(v.c) != len(o.c) {
		return Vector{}, mismatch(opAddScaled, len(v.c), len(o.c))
	}
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] + f*o.c[i]
	}

	return Vector{c: out}, nil
}

// Scale returns f*v.
func (v Vector) Scale(f float64) Vector {
	out := make([]float64, len(v.c))
	for i := range v.c {
		out[i] = v.c[i] * f
	}

	return Vector{c: out}
}

// Dot returns the scalar product v·o.
func (v Vector) Dot(o Vector) (float64, error) {
	if len(v.c) != len(o.c) {
		return 0, mismatch(opDot, len(v.c), len(o.c))
	}

	return dot(v.c, o.c), nil
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Sqrt(dot(v.c, v.c))
}

// DistanceSquared returns |v - o|².
func (v Vector) DistanceSquared(o Vector) (float64, error) {
	if len(v.c) != len(o.c) {
		return 0, mismatch(opDistance, len(v.c), len(o.c))
	}
	var sum, d float64
	for i := range v.c {
		d = v.c[i] - o.c[i]
		sum += d * d
	}

	return sum, nil
}

// Equal reports whether v and o have the same components exactly.
func (v Vector) Equal(o Vector) bool {
	if len(v.c) != len(o.c) {
		return false
	}
	for i := range v.c {
		if v.c[i] != o.c[i] {
			return false
		}
	}

	return true
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector) IsFinite() bool {
	for _, x := range v.c {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// String renders the vector as "<a, b, c>".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, x := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte('>')

	return sb.String()
}

// Centroid returns the arithmetic mean of vs.
func Centroid(vs []Vector) (Vector, error) {
	if len(vs) == 0 {
		return Vector{}, vectorErrorf(opCentroid, ErrEmpty)
	}
	n := len(vs[0].c)
	out := make([]float64, n)
	for _, v := range vs {
		if len(v.c) != n {
			return Vector{}, mismatch(opCentroid, n, len(v.c))
		}
		for i, x := range v.c {
			out[i] += x
		}
	}
	inv := 1.0 / float64(len(vs))
	for i := range out {
		out[i] *= inv
	}

	return Vector{c: out}, nil
}

// dot is the unchecked kernel shared by Dot and Length.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

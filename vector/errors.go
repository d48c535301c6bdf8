// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of differing length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange indicates a component index outside [0, Dim()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates that an aggregate (e.g. Centroid) got no vectors.
	ErrEmpty = errors.New("vector: no vectors given")
)

// Operation tags for error wrapping.
const (
	opSum        = "Sum"
	opDifference = "Difference"
	opDot        = "Dot"
	opAddScaled  = "AddScaled"
	opDistance   = "DistanceSquared"
	opCentroid   = "Centroid"
)

// vectorErrorf wraps err as "vector.<op>: <err>" so errors.Is keeps working.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// mismatch builds a dimension-mismatch error carrying both lengths.
func mismatch(op string, a, b int) error {
	return vectorErrorf(op, fmt.Errorf("%d != %d: %w", a, b, ErrDimensionMismatch))
}

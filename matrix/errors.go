// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvhull/vector"
)

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNegativeThreshold indicates a pivot threshold below zero.
	ErrNegativeThreshold = errors.New("matrix: pivot threshold must be >= 0")
)

// ErrDimensionMismatch indicates incompatible operand lengths. It aliases the
// vector sentinel so a Family built from mixed vectors matches either name.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

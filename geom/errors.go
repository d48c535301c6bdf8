// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvhull/vector"
)

var (
	// ErrTooFewPoints indicates that a hyperplane got no generating point.
	ErrTooFewPoints = errors.New("geom: too few generating points")

	// ErrReferenceInSubspace indicates that the orientation reference of a
	// hyperplane lies on the hyperplane itself.
	ErrReferenceInSubspace = errors.New("geom: reference point lies in the hyperplane")

	// ErrDimensionMismatch aliases the vector sentinel.
	ErrDimensionMismatch = vector.ErrDimensionMismatch
)

// geomErrorf wraps err with an operation tag, preserving it for errors.Is.
func geomErrorf(op string, err error) error {
	return fmt.Errorf("geom.%s: %w", op, err)
}

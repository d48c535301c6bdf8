// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the guard checks the kernels share.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    once more with their operation tag.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense inside the interface is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateThreshold ensures a pivot threshold is finite and non-negative.
// Complexity: O(1).
func ValidateThreshold(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateThreshold", ErrNaNInf)
	}
	if tol < 0 {
		return validatorErrorf("ValidateThreshold", ErrNegativeThreshold)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("%d != %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

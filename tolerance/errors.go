// SPDX-License-Identifier: MIT

package tolerance

import (
	"errors"

	"github.com/katalvlaran/lvhull/vector"
)

var (
	// ErrEmptyInput is returned by Derive for an empty point set.
	ErrEmptyInput = errors.New("tolerance: no points given")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("tolerance: NaN or Inf coordinate")

	// ErrDimensionMismatch aliases the vector sentinel so errors.Is matches
	// either name.
	ErrDimensionMismatch = vector.ErrDimensionMismatch
)

// SPDX-License-Identifier: MIT

package hull

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvhull/geom"
	"github.com/katalvlaran/lvhull/tolerance"
	"github.com/katalvlaran/lvhull/vector"
)

var (
	// ErrEmptyInput is returned when Build gets no points.
	ErrEmptyInput = tolerance.ErrEmptyInput

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = tolerance.ErrNonFinite

	// ErrDimensionMismatch is returned when input points differ in length.
	ErrDimensionMismatch = vector.ErrDimensionMismatch

	// ErrReferenceInSubspace is returned when a facet's orientation
	// reference lies on the facet's own hyperplane.
	ErrReferenceInSubspace = geom.ErrReferenceInSubspace

	// ErrPrecisionInconsistency is returned when floating-point error has
	// broken a construction assumption: a generating point off its own
	// hyperplane, a facet or spanning set of the wrong rank.
	ErrPrecisionInconsistency = errors.New("hull: precision inconsistency")

	// ErrAdjacencyInconsistency is returned when the facet adjacency or the
	// above-set bookkeeping has desynchronized.
	ErrAdjacencyInconsistency = errors.New("hull: adjacency inconsistency")

	// ErrTooManyPoints is returned when the input does not fit PointID.
	ErrTooManyPoints = errors.New("hull: too many points")
)

// Stage names the build phase an error came from.
type Stage string

// Build stages in execution order.
const (
	StageValidate Stage = "validate"
	StageSpanning Stage = "spanning"
	StageSimplex  Stage = "simplex"
	StageExtend   Stage = "extend"
	StageVerify   Stage = "verify"
)

// BuildError is the error type of every failed build. StageValidate means
// the input was rejected before any work began; every other stage is a
// mid-build invariant violation whose partial state has been discarded.
type BuildError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *BuildError) Error() string {
	return fmt.Sprintf("hull: %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *BuildError) Unwrap() error { return e.Err }

// IsInputError reports whether err rejected malformed input, as opposed to
// an invariant violation during construction.
func IsInputError(err error) bool {
	var be *BuildError

	return errors.As(err, &be) && be.Stage == StageValidate
}

// stageErr wraps err into a *BuildError unless it already is one.
func stageErr(stage Stage, err error) error {
	var be *BuildError
	if errors.As(err, &be) {
		return err
	}

	return &BuildError{Stage: stage, Err: err}
}

// hullErrorf adds an operation tag while keeping the sentinel reachable.
func hullErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

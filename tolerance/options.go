// SPDX-License-Identifier: MIT

package tolerance

import "math"

// Defaults (single source of truth).
const (
	// DefaultValuePrecision is the smallest decimal digit a float64 still
	// represents exactly for the magnitudes the hull works with.
	DefaultValuePrecision = 1.0e-15

	// DefaultSafetyFactor scales the admissible offset error.
	DefaultSafetyFactor = 0.5
)

const (
	panicPrecisionInvalid = "tolerance: WithValuePrecision: precision must be finite and > 0"
	panicSafetyInvalid    = "tolerance: WithSafetyFactor: factor must be finite and > 0"
)

// Option adjusts the constants Derive uses.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	precision float64
	safety    float64
}

// WithValuePrecision overrides DefaultValuePrecision.
func WithValuePrecision(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = eps }
}

// WithSafetyFactor overrides DefaultSafetyFactor.
func WithSafetyFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		panic(panicSafetyInvalid)
	}

	return func(o *options) { o.safety = f }
}

func gatherOptions(user ...Option) options {
	o := options{
		precision: DefaultValuePrecision,
		safety:    DefaultSafetyFactor,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

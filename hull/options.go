// SPDX-License-Identifier: MIT

package hull

import (
	"fmt"

	"github.com/katalvlaran/lvhull/tolerance"
)

// Defaults for Build.
const (
	// DefaultFacetBudget of zero means no budget: the hull is completed.
	DefaultFacetBudget = 0

	// DefaultVerify enables the post-build checks of the finished hull.
	DefaultVerify = true
)

// Option configures a build.
type Option func(*options)

type options struct {
	budget     int
	tol        tolerance.Context
	tolOpts    []tolerance.Option
	logger     *Logger
	metrics    MetricsCollector
	verify     bool
	hasContext bool
}

// WithFacetBudget stops the extension once n facets are active. The result
// is an approximate hull: dimension and interior point are exact, but some
// facets may still have points above them. n == 0 disables the budget.
// Panics if n < 0.
func WithFacetBudget(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("hull: WithFacetBudget(%d): budget must be >= 0", n))
	}

	return func(o *options) { o.budget = n }
}

// WithTolerance uses ctx instead of deriving one from the input. Use it
// with tolerance.Widen when several point sets must share thresholds.
// Panics on the zero Context.
func WithTolerance(ctx tolerance.Context) Option {
	if ctx.IsZero() {
		panic("hull: WithTolerance: zero tolerance.Context")
	}

	return func(o *options) {
		o.tol = ctx
		o.hasContext = true
	}
}

// WithToleranceOptions forwards options to tolerance.Derive.
// Ignored when WithTolerance is also given.
func WithToleranceOptions(opts ...tolerance.Option) Option {
	return func(o *options) { o.tolOpts = append(o.tolOpts, opts...) }
}

// WithLogger sets the logger. nil restores the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics collector. nil restores the no-op collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) { o.metrics = m }
}

// WithVerify toggles the post-build checks: every facet has rank
// Dimension()−1, no neighbor's opposite point lies above a facet, and every
// above-set holds exactly the input points above its facet. The last check
// costs O(points·facets·dim).
func WithVerify(enabled bool) Option {
	return func(o *options) { o.verify = enabled }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) options {
	o := options{
		budget:    DefaultFacetBudget,
		verify:    DefaultVerify,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	return o
}

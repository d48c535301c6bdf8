// SPDX-License-Identifier: MIT

package hull

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/lvhull/vector"
	"golang.org/x/sync/errgroup"
)

// BuildAll builds one hull per point set concurrently, at most GOMAXPROCS
// at a time. Each build derives its own tolerance context unless
// WithTolerance is given, so the builds share no state.
//
// The first failure cancels the builds that have not started yet and is
// returned with the index of its set; a cancelled ctx does the same. The
// result slice is nil on error.
func BuildAll(ctx context.Context, sets [][][]float64, opts ...Option) ([]*Hull, error) {
	o := gatherOptions(opts...)
	out := make([]*Hull, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, set := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vs := make([]vector.Vector, len(set))
			for k, p := range set {
				vs[k] = vector.FromSlice(p)
			}
			bo := o
			bo.logger = o.logger.WithBuildID(i)
			h, err := buildContext(gctx, vs, bo)
			if err != nil {
				return fmt.Errorf("set %d: %w", i, err)
			}
			out[i] = h

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

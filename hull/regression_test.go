package hull_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/internal/pointgen"
	"github.com/katalvlaran/lvhull/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// regressionCase is one entry of testdata/regressions.yaml.
type regressionCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Dimension   int         `yaml:"dimension"`
	Points      [][]float64 `yaml:"points"`
}

func loadRegressions(t *testing.T) []regressionCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "regressions.yaml"))
	require.NoError(t, err)

	var doc struct {
		Cases []regressionCase `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Cases)

	return doc.Cases
}

// TestRegressions replays point sets that once broke the construction.
func TestRegressions(t *testing.T) {
	for _, tc := range loadRegressions(t) {
		t.Run(tc.Name, func(t *testing.T) {
			require.NotEmpty(t, tc.Points, tc.Description)
			h := mustBuild(t, tc.Points)

			assert.Equal(t, tc.Dimension, h.Dimension())
			assert.True(t, h.Complete())
			requireEnclosesAll(t, h, tc.Points)
			requireSymmetric(t, h)
		})
	}
}

// TestRegressionsCapped replays the same sets under a tight facet budget.
func TestRegressionsCapped(t *testing.T) {
	for _, tc := range loadRegressions(t) {
		t.Run(tc.Name, func(t *testing.T) {
			h := mustBuild(t, tc.Points, hull.WithFacetBudget(tc.Dimension+4))
			assert.Equal(t, tc.Dimension, h.Dimension())
			assert.True(t, h.Contains(h.InteriorPoint()))
		})
	}
}

// TestNearCoplanarLattice builds noisy lattice points, where many points sit
// within tolerance of several facets at once. A build either fails with a
// construction error or returns a hull that encloses every input point.
func TestNearCoplanarLattice(t *testing.T) {
	seeds := 6
	if testing.Short() {
		seeds = 2
	}
	var built, failed int
	for dim := 2; dim <= 6; dim++ {
		for _, noise := range []float64{0, 1e-12, 1e-9, 1e-6} {
			for seed := 0; seed < seeds; seed++ {
				name := fmt.Sprintf("dim=%d/noise=%g/seed=%d", dim, noise, seed)
				pts, err := pointgen.Lattice(60, dim, 4, 10, noise, pointgen.RNGFromSeed(int64(seed)))
				require.NoError(t, err)

				h, err := hull.Build(pts)
				if err != nil {
					failed++
					assert.False(t, hull.IsInputError(err), name)
					assert.True(t, errors.Is(err, hull.ErrPrecisionInconsistency) ||
						errors.Is(err, hull.ErrAdjacencyInconsistency) ||
						errors.Is(err, hull.ErrReferenceInSubspace), "%s: %v", name, err)

					continue
				}
				built++
				require.NoError(t, h.Validate(), name)
				require.True(t, h.Complete(), name)
				requireEnclosesAll(t, h, pts)
			}
		}
	}
	t.Logf("lattice builds: %d built, %d rejected", built, failed)
}

// TestNearCoplanarLatticeCapped: a capped build keeps exact above-sets, so
// every point outside the hull is recorded above some facet.
func TestNearCoplanarLatticeCapped(t *testing.T) {
	for dim := 3; dim <= 5; dim++ {
		pts, err := pointgen.Lattice(60, dim, 4, 10, 1e-9, pointgen.RNGFromSeed(int64(dim)))
		require.NoError(t, err)

		h, err := hull.Build(pts, hull.WithFacetBudget(4*dim))
		if err != nil {
			assert.False(t, hull.IsInputError(err))
			continue
		}
		require.NoError(t, h.Validate())
		recorded := map[int]bool{}
		for _, f := range h.Facets() {
			for _, id := range f.Above() {
				recorded[int(id)] = true
			}
		}
		for i, p := range pts {
			if !h.Contains(vector.FromSlice(p)) {
				assert.True(t, recorded[i], "dim=%d: point %d outside but not recorded", dim, i)
			}
		}
	}
}

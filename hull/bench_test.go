package hull_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/internal/pointgen"
	"github.com/katalvlaran/lvhull/vector"
)

func BenchmarkBuild(b *testing.B) {
	for _, dim := range []int{2, 3, 4, 5} {
		pts, err := pointgen.Uniform(500, dim, 1000, pointgen.RNGFromSeed(int64(dim)))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := hull.Build(pts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildBudget(b *testing.B) {
	pts, err := pointgen.Sphere(400, 5, 100, pointgen.RNGFromSeed(9))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := hull.Build(pts, hull.WithFacetBudget(200)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildAll(b *testing.B) {
	sets := make([][][]float64, 16)
	base := pointgen.RNGFromSeed(3)
	for i := range sets {
		pts, err := pointgen.Uniform(300, 3, 100, pointgen.DeriveRNG(base, uint64(i)))
		if err != nil {
			b.Fatal(err)
		}
		sets[i] = pts
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hull.BuildAll(context.Background(), sets); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	pts, err := pointgen.Uniform(1000, 3, 100, pointgen.RNGFromSeed(4))
	if err != nil {
		b.Fatal(err)
	}
	h, err := hull.Build(pts)
	if err != nil {
		b.Fatal(err)
	}
	q := vector.New(50, 50, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Contains(q)
	}
}

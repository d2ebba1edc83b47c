// SPDX-License-Identifier: MIT
package longpath_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/longpath"
	"github.com/katalvlaran/longpath/apsp"
	"github.com/katalvlaran/longpath/builder"
)

func benchmarkSearch(b *testing.B, n int, slack int64) {
	g := builder.Must(builder.Random(n, builder.WithSeed(1), builder.WithPotentials(5)))
	d, err := apsp.Default().Solve(g)
	if err != nil {
		b.Fatal(err)
	}
	budget := d.Dist(0, n-1) + slack
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = longpath.Search(ctx, d, budget); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_8_Tight(b *testing.B)  { benchmarkSearch(b, 8, 5) }
func BenchmarkSearch_8_Loose(b *testing.B)  { benchmarkSearch(b, 8, 30) }
func BenchmarkSearch_10_Tight(b *testing.B) { benchmarkSearch(b, 10, 5) }

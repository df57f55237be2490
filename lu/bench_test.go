// Package lu_test provides benchmarks for the pivoted factorization, using
// deterministic random fill.
package lu_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsolve/csc"
	"github.com/katalvlaran/sparsolve/lu"
)

// benchSizes are the system sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink to defeat dead-code elimination
var sinkF *lu.Factorization

func BenchmarkFactor(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := csc.FromDense(randomSquare(n, 0.1, int64(n)))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := lu.Factor(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkFactor_NoPivoting(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := csc.FromDense(randomSquare(n, 0.1, int64(n)))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := lu.Factor(a, lu.WithPivotThreshold(1))
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

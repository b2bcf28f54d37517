// SPDX-License-Identifier: MIT

// Benchmarks for the push cascade and the statistics kernels, fed with
// deterministic series.
package logbin_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvbin/logbin"
	"github.com/katalvlaran/lvbin/series"
)

// sinks to defeat dead-code elimination
var (
	sinkF  float64
	sinkFs []float64
)

func BenchmarkPush(b *testing.B) {
	xs, err := series.AR1(1<<16, 0.5, 1)
	if err != nil {
		b.Fatal(err)
	}
	bn, err := logbin.New[float64](1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if bn.RawCount() == bn.Capacity() {
			bn.Reset()
		}
		bn.Push(xs[i&(len(xs)-1)])
	}
}

func BenchmarkPushComplex(b *testing.B) {
	zs, err := series.ComplexWhite(1<<16, 1)
	if err != nil {
		b.Fatal(err)
	}
	bn, err := logbin.New[complex128](1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if bn.RawCount() == bn.Capacity() {
			bn.Reset()
		}
		bn.Push(zs[i&(len(zs)-1)])
	}
}

func BenchmarkPushArray(b *testing.B) {
	for _, dim := range []int{4, 64, 1024} {
		b.Run(fmt.Sprintf("dim=%d", dim), func(b *testing.B) {
			rows, err := series.VectorWhite(256, dim, 7)
			if err != nil {
				b.Fatal(err)
			}
			bn, err := logbin.NewArray[float64](1<<20, []int{dim})
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if bn.RawCount() == bn.Capacity() {
					bn.Reset()
				}
				if err := bn.PushArray(rows[i&255]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllStdErrors(b *testing.B) {
	xs, err := series.AR1(1<<18, 0.9, 2)
	if err != nil {
		b.Fatal(err)
	}
	bn, err := logbin.FromSeries(xs)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		se, err := bn.AllStdErrors()
		if err != nil {
			b.Fatal(err)
		}
		sinkFs = se
	}
}

func BenchmarkConvergence(b *testing.B) {
	xs, err := series.AR1(1<<18, 0.9, 3)
	if err != nil {
		b.Fatal(err)
	}
	bn, err := logbin.FromSeries(xs)
	if err != nil {
		b.Fatal(err)
	}
	lvl := bn.ReliableLevel()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := bn.Convergence(lvl)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = c
	}
}

package logbin_test

import (
	"fmt"

	"github.com/katalvlaran/lvbin/logbin"
)

// ExampleBinner shows per-level statistics on a tiny series.
func ExampleBinner() {
	b, err := logbin.New[float64](7)
	if err != nil {
		panic(err)
	}
	b.Append([]float64{1, 2, 3, 4, 5})

	for l := 0; l < 2; l++ {
		m, _ := b.Mean(l)
		v, _ := b.Variance(l)
		tau, _ := b.AutocorrelationTime(l)
		fmt.Printf("level %d: mean=%.2f var=%.2f tau=%.2f\n", l, m, v, tau)
	}
	_, err = b.Variance(2)
	fmt.Println("level 2:", err)

	// Output:
	// level 0: mean=3.00 var=2.50 tau=0.00
	// level 1: mean=2.50 var=2.00 tau=0.50
	// level 2: Variance: logbin: insufficient data
}

// ExampleBinner_Grow shows the overflow buffer being replayed.
func ExampleBinner_Grow() {
	b, _ := logbin.New[float64](1)
	b.Append([]float64{1, 2, 3, 4, 5, 6})
	fmt.Println("levels:", b.Levels(), "overflow:", b.Overflow())

	g, err := b.Grow(3)
	if err != nil {
		panic(err)
	}
	fmt.Println("levels:", g.Levels(), "overflow:", g.Overflow())

	_, err = g.Grow(2)
	fmt.Println(err)

	// Output:
	// levels: 1 overflow: [1.5 3.5 5.5]
	// levels: 2 overflow: [2.5]
	// Grow: logbin: capacity not increased
}

// ExampleFromArraySeries bins two observables side by side.
func ExampleFromArraySeries() {
	b, err := logbin.FromArraySeries([][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}})
	if err != nil {
		panic(err)
	}
	m, _ := b.Mean(0)
	v, _ := b.Variance(0)
	fmt.Println(b.Category(), b.Shape(), m)
	fmt.Printf("%.4f\n", v)

	err = b.PushArray([]float64{1})
	fmt.Println(err)

	// Output:
	// array-real [2] [2.5 25]
	// [1.6667 166.6667]
	// PushArray: got 1 values, want 2 (shape [2]): logbin: dimension mismatch
}

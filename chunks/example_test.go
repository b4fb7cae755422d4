package chunks_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// ExampleEvenDivisor plans exact-divisor chunks for a 300³ float64 cube with
// ten times as many chunks along z as along x and y.
func ExampleEvenDivisor() {
	s, _ := shape.New(8,
		shape.Dim{Name: "x", Len: 300},
		shape.Dim{Name: "y", Len: 300},
		shape.Dim{Name: "z", Len: 300},
	)

	res, err := chunks.EvenDivisor(s, "1MB", ratio.AspectRatio{"x": 1, "y": 1, "z": 10})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Ordered, res.NBytes)
	// Output: [{x 100} {y 100} {z 12}] 960000
}

// ExampleIterativeRatioIncrease keeps x whole and grows y and z together.
func ExampleIterativeRatioIncrease() {
	s, _ := shape.New(8,
		shape.Dim{Name: "x", Len: 100},
		shape.Dim{Name: "y", Len: 100},
		shape.Dim{Name: "z", Len: 100},
	)

	res, err := chunks.IterativeRatioIncrease(s, 4e5,
		ratio.AspectRatio{"x": ratio.Unchunked, "y": 2, "z": 10},
		chunks.WithTolerance(0.01))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Chunks)
	// Output: map[x:100 y:50 z:10]
}

// ExamplePlan_noMatch shows how callers tell an unsatisfiable request apart.
func ExamplePlan_noMatch() {
	s, _ := shape.New(8,
		shape.Dim{Name: "x", Len: 10},
		shape.Dim{Name: "y", Len: 10},
	)

	_, err := chunks.Plan(chunks.EvenDivisorAlgo, s, "1GB", nil, chunks.WithDefaultRatio(1))
	fmt.Println(errors.Is(err, chunks.ErrNoMatchingChunks))
	// Output: true
}

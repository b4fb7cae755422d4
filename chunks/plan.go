// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"

	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// Planners returns a fresh registry of every algorithm's Planner.
func Planners() map[Algorithm]Planner {
	return map[Algorithm]Planner{
		EvenDivisorAlgo: PlannerFunc(EvenDivisor),
		IterativeAlgo:   PlannerFunc(IterativeRatioIncrease),
	}
}

// Plan routes a request to the planner selected by algo.
func Plan(algo Algorithm, s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error) {
	switch algo {
	case EvenDivisorAlgo:
		return EvenDivisor(s, target, ar, opts...)
	case IterativeAlgo:
		return IterativeRatioIncrease(s, target, ar, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
}

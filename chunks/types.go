// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// Algorithm selects a planner.
type Algorithm int

const (
	// EvenDivisorAlgo selects EvenDivisor.
	EvenDivisorAlgo Algorithm = iota + 1

	// IterativeAlgo selects IterativeRatioIncrease.
	IterativeAlgo
)

// Algorithms lists every planner in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{EvenDivisorAlgo, IterativeAlgo}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case EvenDivisorAlgo:
		return "even-divisor"
	case IterativeAlgo:
		return "iterative"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name ("even-divisor", "iterative", or the long forms
// "even_divisor" / "iterative_ratio_increase") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "even-divisor", "even_divisor", "even", "divisor":
		return EvenDivisorAlgo, nil
	case "iterative", "iterative-ratio-increase", "iterative_ratio_increase":
		return IterativeAlgo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Result is a chunk plan.
type Result struct {
	// Chunks maps every dataset dimension to its chunk length.
	Chunks map[string]int

	// Ordered holds the same chunk lengths in dataset order.
	Ordered []shape.Dim

	// NBytes is the byte size of one full chunk.
	NBytes int64

	// Diagnostics carries the non-fatal findings of ratio normalization.
	Diagnostics ratio.Diagnostics

	// Algorithm is the planner that produced the plan.
	Algorithm Algorithm
}

// Planner is the contract both search algorithms implement: validated inputs
// in, a chunk plan or ErrNoMatchingChunks out.
type Planner interface {
	Plan(s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error)
}

// PlannerFunc adapts a function to Planner.
type PlannerFunc func(s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error)

// Plan implements Planner.
func (f PlannerFunc) Plan(s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error) {
	return f(s, target, ar, opts...)
}

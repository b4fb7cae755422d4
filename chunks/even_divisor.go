// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rechunk/divisor"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// EvenDivisor plans chunks whose lengths divide the dimension lengths exactly.
//
// Algorithm:
//  1. Validate and normalize (prepare). Unchunked dims are fixed at full
//     length; chunked dims are visited in sorted-name order.
//  2. Scale scan: for k = 1, 2, … take the iterative unit shape scaled by k
//     and snap every length down to a divisor (divisor.AtMost). Bytes never
//     decrease with k, so the scan stops at the first step past the window.
//     This costs O(max(len_d)) and seeds the best candidate.
//  3. Refinement: depth-first walk over the divisor lists of the chunked dims
//     (ascending). A branch is cut as soon as
//     • the partial chunk already weighs ≥ target + slack (every larger
//     divisor is heavier too, so the loop stops), or
//     • even full-length completion stays ≤ target − slack (try the next,
//     larger divisor).
//     The walk stops early after Options.MaxSteps divisors; the best
//     candidate found so far is kept.
//  4. Every candidate inside the window is scored by the Euclidean distance
//     between its normalized chunk-count vector (len/chunk, divided by its
//     sum) and the normalized reduced ratio vector. The best one wins; see
//     better for the tie-break contract.
//  5. No candidate in the window → ErrNoMatchingChunks.
//
// Errors: ErrNoMatchingChunks and validation sentinels.
//
// Complexity: O(max(len_d) · D · log d) for the scan plus at most MaxSteps
// walk steps. Memory O(Σ d(len_i)).
func EvenDivisor(s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error) {
	r, err := prepare(s, target, ar, opts)
	if err != nil {
		return Result{}, err
	}

	return r.evenDivisor()
}

// candidate is an in-window divisor combination.
type candidate struct {
	lengths []int
	bytes   float64
	dist    float64
}

// divisorSearch holds the state shared by the scan and the walk.
type divisorSearch struct {
	r     *request
	divs  [][]int // ascending divisors per chunked dim
	want  []float64
	best  *candidate
	steps int
}

func (r *request) evenDivisor() (Result, error) {
	ds := &divisorSearch{
		r:    r,
		divs: make([][]int, len(r.chunked)),
		want: r.ratioVector(),
	}
	for i, l := range r.lens {
		d, err := divisor.Divisors(l)
		if err != nil {
			return Result{}, err
		}
		ds.divs[i] = d
	}

	ds.scan()
	complete := ds.walk()

	if ds.best == nil {
		reason := "no divisor combination inside the size window"
		if !complete {
			reason = fmt.Sprintf("no divisor combination inside the size window within %d walk steps", r.opts.MaxSteps)
		}

		return Result{}, r.noMatch(EvenDivisorAlgo, reason)
	}

	return r.result(EvenDivisorAlgo, ds.best.lengths, ds.best.bytes), nil
}

// consider scores an in-window combination and keeps it if it beats the best.
func (ds *divisorSearch) consider(lengths []int, b float64) {
	c := candidate{bytes: b, dist: ds.r.ratioDistance(lengths, ds.want)}
	if ds.best == nil || ds.r.better(c, *ds.best, lengths) {
		c.lengths = append([]int(nil), lengths...)
		ds.best = &c
	}
}

// scan tries the ratio-scaled shapes k·u snapped down to divisors.
func (ds *divisorSearch) scan() {
	r := ds.r
	unit := r.unitShape()
	maxLen := 0
	for _, l := range r.lens {
		maxLen = max(maxLen, l)
	}

	cur := make([]int, len(unit))
	for k := 1; k <= maxLen; k++ {
		full := true
		b := r.fixed
		for i, u := range unit {
			c := divisor.AtMost(ds.divs[i], int(math.Floor(float64(k)*u+0.5)))
			if c < r.lens[i] {
				full = false
			}
			cur[i] = c
			b *= float64(c)
		}

		if r.above(b) {
			return
		}
		if r.fits(b) {
			ds.consider(cur, b)
		}
		if full {
			return
		}
	}
}

// walk runs the pruned depth-first refinement and reports whether it finished
// within the step budget.
func (ds *divisorSearch) walk() bool {
	r := ds.r
	n := len(r.chunked)

	// rest[i] = Π lens[i:], the heaviest completion from level i on.
	rest := make([]float64, n+1)
	rest[n] = 1
	for i := n - 1; i >= 0; i-- {
		rest[i] = rest[i+1] * float64(r.lens[i])
	}

	cur := make([]int, n)
	var visit func(i int, prod float64) bool
	visit = func(i int, prod float64) bool {
		if i == n {
			if b := r.fixed * prod; r.fits(b) {
				ds.consider(cur, b)
			}

			return true
		}
		for _, d := range ds.divs[i] {
			if ds.steps++; ds.steps > r.opts.MaxSteps {
				return false
			}
			p := prod * float64(d)
			if r.above(r.fixed * p) {
				break
			}
			if r.below(r.fixed * p * rest[i+1]) {
				continue
			}
			cur[i] = d
			if !visit(i+1, p) {
				return false
			}
		}

		return true
	}

	return visit(0, 1)
}

// ratioVector is the reduced ratio of the chunked dims, normalized to sum 1.
func (r *request) ratioVector() []float64 {
	v := make([]float64, len(r.chunked))
	sum := 0.0
	for i, name := range r.chunked {
		v[i] = float64(r.ratios[name])
		sum += v[i]
	}
	for i := range v {
		v[i] /= sum
	}

	return v
}

// ratioDistance compares the normalized chunk-count vector of lengths with want.
func (r *request) ratioDistance(lengths []int, want []float64) float64 {
	if len(lengths) == 0 {
		return 0
	}
	counts := make([]float64, len(lengths))
	sum := 0.0
	for i, c := range lengths {
		counts[i] = float64(r.lens[i]) / float64(c)
		sum += counts[i]
	}
	d := 0.0
	for i := range counts {
		e := counts[i]/sum - want[i]
		d += e * e
	}

	return math.Sqrt(d)
}

// better reports whether candidate a (with lengths aLen, since a.lengths is
// only filled once a candidate is kept) beats the current best b.
//
// Tie-break contract, in order:
//  1. smaller ratio distance;
//  2. smaller |bytes − target|;
//  3. at or below target beats above target;
//  4. lexicographically larger lengths in sorted-name order (larger chunk).
func (r *request) better(a, b candidate, aLen []int) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	da, db := math.Abs(a.bytes-r.target), math.Abs(b.bytes-r.target)
	if da != db {
		return da < db
	}
	if la, lb := a.bytes <= r.target, b.bytes <= r.target; la != lb {
		return la
	}
	for i := range aLen {
		if aLen[i] != b.lengths[i] {
			return aLen[i] > b.lengths[i]
		}
	}

	return false
}

// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// IterativeRatioIncrease plans chunks by growing a unit chunk shape until its
// byte size enters the window. Chunk lengths need not divide the dimension
// lengths; the trailing chunk along an axis may be short.
//
// Algorithm:
//  1. Validate and normalize (prepare).
//  2. Unit shape: w_d = len_d / ratio_d for every chunked d (chunk count
//     proportional to ratio ⇒ chunk length proportional to len/ratio), then
//     u_d = w_d / min_e w_e so the smallest entry is exactly 1.
//  3. For k = 1, 2, …: c_d = clamp(⌊k·u_d + ½⌋, 1, len_d). A clamped dim stays
//     at full length from then on.
//  4. Return the first k whose bytes fall in the window.
//  5. Bytes past the upper edge ⇒ ErrNoMatchingChunks (the step jumped over
//     the window; no interpolation between integer steps).
//     All chunked dims at full length and still short ⇒ ErrNoMatchingChunks.
//
// With no chunked dims the single all-full chunk is checked against the window.
//
// Complexity: O(max(len_d) · D) time, O(D) memory.
func IterativeRatioIncrease(s shape.Shape, target any, ar ratio.AspectRatio, opts ...Option) (Result, error) {
	r, err := prepare(s, target, ar, opts)
	if err != nil {
		return Result{}, err
	}

	return r.iterative()
}

func (r *request) iterative() (Result, error) {
	n := len(r.chunked)
	if n == 0 {
		if r.fits(r.fixed) {
			return r.result(IterativeAlgo, nil, r.fixed), nil
		}

		return Result{}, r.noMatch(IterativeAlgo, "every dimension is unchunked and the whole array is outside the size window")
	}

	unit := r.unitShape()
	maxLen := 0
	for _, l := range r.lens {
		if l > maxLen {
			maxLen = l
		}
	}

	cur := make([]int, n)
	prev := 0.0
	// unit[i] ≥ 1, so every c_i ≥ k and all dims are full once k reaches maxLen.
	for k := 1; k <= maxLen; k++ {
		full := true
		b := r.fixed
		for i, u := range unit {
			c := int(math.Floor(float64(k)*u + 0.5))
			if c < 1 {
				c = 1
			}
			if c >= r.lens[i] {
				c = r.lens[i]
			} else {
				full = false
			}
			cur[i] = c
			b *= float64(c)
		}

		if r.fits(b) {
			return r.result(IterativeAlgo, cur, b), nil
		}
		if r.above(b) {
			return Result{}, r.noMatch(IterativeAlgo, overshoot(k, prev, b))
		}
		if full {
			break
		}
		prev = b
	}

	return Result{}, r.noMatch(IterativeAlgo, "reached the full array size below the size window")
}

// unitShape returns u_d (see IterativeRatioIncrease) aligned with r.chunked.
func (r *request) unitShape() []float64 {
	w := make([]float64, len(r.chunked))
	least := math.Inf(1)
	for i, name := range r.chunked {
		w[i] = float64(r.lens[i]) / float64(r.ratios[name])
		least = math.Min(least, w[i])
	}
	for i := range w {
		w[i] /= least
	}

	return w
}

func overshoot(k int, prev, b float64) string {
	if k == 1 {
		return fmt.Sprintf("smallest chunk at the requested ratio is already %s", bytesize.Format(int64(b)))
	}

	return fmt.Sprintf("step %d jumped from %s to %s across the size window",
		k, bytesize.Format(int64(prev)), bytesize.Format(int64(b)))
}

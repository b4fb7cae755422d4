// SPDX-License-Identifier: MIT

package divisor

import (
	"errors"
	"sort"
)

// ErrNonPositive is returned when a divisor query is made for n < 1.
var ErrNonPositive = errors.New("divisor: n must be positive")

// Divisors returns every positive divisor of n in ascending order.
//
// Algorithm:
//  1. For i = 1..⌊√n⌋, if i | n record i in "small" and n/i in "large"
//     (skipping n/i when it equals i, i.e. n is a perfect square).
//  2. Result = small ++ reverse(large).
//
// Complexity: O(√n) time, O(d(n)) memory.
func Divisors(n int) ([]int, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}

	var small, large []int
	for i := 1; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	out := make([]int, 0, len(small)+len(large))
	out = append(out, small...)
	for k := len(large) - 1; k >= 0; k-- {
		out = append(out, large[k])
	}

	return out, nil
}

// AtMost returns the largest element of divs that is ≤ bound, where divs is
// an ascending divisor list as returned by Divisors. A bound below divs[0]
// yields divs[0] (1 for any Divisors result).
//
// Complexity: O(log len(divs)).
func AtMost(divs []int, bound int) int {
	i := sort.SearchInts(divs, bound+1)
	if i == 0 {
		return divs[0]
	}

	return divs[i-1]
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) == 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// GCDAll folds GCD over xs. An empty slice yields 0.
func GCDAll(xs []int) int {
	g := 0
	for _, x := range xs {
		g = GCD(g, x)
		if g == 1 {
			break
		}
	}

	return g
}

// Package divisor holds the small number-theoretic helpers shared by the
// chunk planners.
//
// What lives here?
//
//	• Divisors(n)        — every positive divisor of n, ascending.
//	• AtMost(divs, b)    — the largest entry of a divisor list that does not exceed b.
//	• GCD(a, b), GCDAll  — greatest common divisor, pairwise and over a slice.
//
// Divisors walks i = 1..⌊√n⌋ and pairs every hit i with n/i, so the cost is
// O(√n) time and O(d(n)) memory, where d(n) is the divisor count (at most a
// few thousand for any length that fits in an int).
//
// All functions are pure and safe for concurrent use.
//
//	import "github.com/katalvlaran/rechunk/divisor"
//
//	divisor.Divisors(12)   // [1 2 3 4 6 12]
//	divs, _ := divisor.Divisors(300)
//	divisor.AtMost(divs, 7) // 6
//	divisor.GCDAll([]int{4, 6, 10}) // 2
package divisor

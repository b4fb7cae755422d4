// Package ratio validates and normalizes the aspect ratio a caller asks a
// chunk plan to respect.
//
// What does a ratio mean?
//
//	Ratio values are integers. A value r ≥ 1 on a dimension is proportional
//	to the NUMBER OF CHUNKS along that dimension: with {x: 1, y: 4} the y axis
//	is cut into four times as many chunks as x. The sentinel -1 (Unchunked)
//	keeps a dimension whole. Everything else (0, ≤ -2, fractions) is invalid.
//
// Normalize turns the caller's AspectRatio into a complete map covering
// exactly the dataset's dimensions:
//
//  1. names absent from the dataset are rejected (ErrExtraDims) or, when
//     allowed, trimmed with a Trimmed diagnostic;
//  2. the default ratio and every remaining value are checked
//     (ErrNonInteger, ErrOutOfRange, ErrTooLarge);
//  3. dataset dimensions missing from the ratio receive the default ratio,
//     reported with a Defaulted diagnostic.
//
// Diagnostics are returned instead of logged; the caller decides whether to
// print, ignore or fail on them. Reduce brings the chunked entries to lowest
// terms, so {y: 2, z: 10} and {y: 1, z: 5} describe the same plan.
//
// The result never depends on map iteration order: names are visited in
// sorted order and diagnostics list dimensions sorted.
package ratio

// SPDX-License-Identifier: MIT

package ratio

import "errors"

var (
	// ErrNonInteger indicates a ratio value with a fractional part (or NaN/Inf).
	ErrNonInteger = errors.New("ratio: value must be an integer")

	// ErrOutOfRange indicates a ratio value outside {-1} ∪ [1, ∞).
	ErrOutOfRange = errors.New("ratio: value can only be larger than 0 or -1")

	// ErrTooLarge indicates a ratio value above MaxRatio.
	ErrTooLarge = errors.New("ratio: value too large")

	// ErrExtraDims indicates ratio entries for dimensions the dataset does not have.
	ErrExtraDims = errors.New("ratio: aspect ratio contains dimensions not present in dataset")
)

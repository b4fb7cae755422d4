// SPDX-License-Identifier: MIT

package chunks

import "errors"

var (
	// ErrNoMatchingChunks indicates that no chunking satisfies the size window
	// for the given target, ratio and tolerance. Retrying with a wider
	// tolerance is up to the caller.
	ErrNoMatchingChunks = errors.New("chunks: no matching chunks")

	// ErrEmptyShape indicates a shape without dimensions.
	ErrEmptyShape = errors.New("chunks: shape has no dimensions")

	// ErrBadTolerance indicates a size tolerance outside (0, 1].
	ErrBadTolerance = errors.New("chunks: size tolerance must be in (0, 1]")

	// ErrUnknownAlgorithm indicates an algorithm name or value with no planner.
	ErrUnknownAlgorithm = errors.New("chunks: unknown algorithm")
)

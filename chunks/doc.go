// Package chunks plans how to cut a multi-dimensional array into chunks: one
// integer chunk length per dimension such that one chunk weighs roughly a
// target number of bytes and the chunk counts follow a requested aspect ratio.
//
// 🚀 What is a chunk plan?
//
//	Given a shape (named dimension lengths + element byte width), a target
//	chunk size (bytes or "1MB"), an aspect ratio ({x: 1, y: 4, t: -1}) and a
//	size tolerance t, return chunk[d] for every dimension d with
//	  • |elemSize·Π chunk[d] − target| < t·target;
//	  • chunk[d] == len(d) for ratio −1 (never split);
//	  • ⌈len(d)/chunk[d]⌉ proportional to ratio(d) for the other dimensions,
//	    as closely as integer lengths allow.
//	Nothing is read or written; the plan is handed to whatever rechunks the data.
//
// ✨ Two planners, one contract (Planner):
//
//   - EvenDivisor — every chunk length divides its dimension length, so no
//     trailing partial chunk. Enumerates divisor combinations with pruning and
//     keeps the one whose chunk-count vector is closest to the ratio.
//   - IterativeRatioIncrease — grows a unit chunk shape by an integer
//     multiplier until the byte size enters the window. Finer size control,
//     no divisibility requirement.
//
// Both share validation (ratio.Normalize, bytesize.Resolve), the same
// lowest-terms ratio (ratio.Reduce) and the same tolerance window, and both
// are independent of dimension and map ordering.
//
// ⚙️ Usage:
//
//	s, _ := shape.New(8, shape.Dim{Name: "x", Len: 300}, shape.Dim{Name: "y", Len: 300})
//	res, err := chunks.EvenDivisor(s, "1MB", ratio.AspectRatio{"x": 1, "y": 4},
//	    chunks.WithTolerance(0.2))
//	if errors.Is(err, chunks.ErrNoMatchingChunks) {
//	    // widen the tolerance or change the target and retry
//	}
//	fmt.Println(res.Chunks, res.NBytes, res.Diagnostics)
//
// Errors (sentinel):
//
//	– ErrNoMatchingChunks  search exhausted without a chunking inside the window.
//	– ErrEmptyShape        the shape has no dimensions.
//	– ErrUnknownAlgorithm  Plan/ParseAlgorithm got an unknown algorithm.
//	– shape.*, ratio.*, bytesize.ErrInvalidTarget are passed through (%w).
//
// Complexity:
//
//	EvenDivisor:            O(max(len_i) · D · log d) scale scan, then at most
//	                        Options.MaxSteps steps of divisor-walk refinement.
//	IterativeRatioIncrease: O(max(len_i) · D) for D dimensions.
//	Memory:                 O(D) beyond the divisor lists.
//
// All functions are pure: safe for concurrent use, no I/O, no logging.
package chunks

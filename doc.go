// SPDX-License-Identifier: MIT

// Package rechunk proposes chunk shapes for large n-dimensional arrays
// (Zarr, NetCDF, HDF5 style storage), balancing two wishes:
//
//   - every chunk should weigh close to a target byte size, and
//   - the number of chunks along each dimension should follow a
//     user-given aspect ratio (with -1 meaning "keep this dimension whole").
//
// 🚀 What lives where?
//
//	shape/    — ordered dimensions + element width; dtype table; Zarr .zarray loader
//	bytesize/ — target sizes from ints, floats and strings ("100MB", "64MiB")
//	ratio/    — aspect-ratio validation, defaulting, trimming, lowest terms
//	divisor/  — divisor enumeration and gcd helpers
//	chunks/   — the two planners (EvenDivisor, IterativeRatioIncrease)
//	cmd/chunkplan — command-line front-end
//
// ✨ Quick start:
//
//	s, _ := shape.New(8,
//		shape.Dim{Name: "time", Len: 8760},
//		shape.Dim{Name: "lat", Len: 720},
//		shape.Dim{Name: "lon", Len: 1440},
//	)
//	res, err := chunks.EvenDivisor(s, "100MB",
//		ratio.AspectRatio{"time": 1, "lat": 4, "lon": 8})
//	// res.Chunks == map[lat:60 lon:60 time:2920]
//
// A request no chunking can satisfy within the tolerance window returns an
// error wrapping chunks.ErrNoMatchingChunks. Nothing here reads or writes
// array data.
package rechunk

// Package shape describes the dataset a chunk plan is computed for: an ordered
// list of named dimensions and one element byte width shared by the whole
// array.
//
// 🚀 What is a shape descriptor?
//
//	The planners never touch array data. All they need is
//	  • the dimension names and lengths, in the order the caller knows them;
//	  • the byte width of one element (the dtype size).
//	From that the byte footprint of any chunk is elemSize × Π chunk[d].
//
// ✨ Sources:
//   - New(elemSize, dims...)       — build from literals (validated).
//   - ParseDims("x=100,y=200")     — the CLI form, order preserved.
//   - FromZarray(zarray, zattrs)   — a Zarr v2 ".zarray" document plus the
//     optional ".zattrs" carrying "_ARRAY_DIMENSIONS" (xarray convention).
//   - DTypeSize("<f8") / ("float64") — numpy/Zarr dtype widths.
//
// Dimension order is kept for display only; every lookup is by name.
//
// Errors (sentinel):
//
//	– ErrEmptyName, ErrDuplicateDim, ErrBadLength, ErrBadElemSize
//	– ErrUnknownDType, ErrBadDimSpec, ErrBadMetadata
package shape

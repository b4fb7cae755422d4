// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// zarray is the subset of a Zarr v2 ".zarray" document the planner needs.
type zarray struct {
	ZarrFormat int                 `json:"zarr_format"`
	Shape      []int               `json:"shape"`
	Chunks     []int               `json:"chunks"`
	DType      jsoniter.RawMessage `json:"dtype"`
}

// zattrs carries the xarray dimension-name convention.
type zattrs struct {
	ArrayDimensions []string `json:"_ARRAY_DIMENSIONS"`
}

// FromZarray builds a Shape from a Zarr v2 ".zarray" document.
//
// Dimension names come from the "_ARRAY_DIMENSIONS" attribute of the
// companion ".zattrs" document when attrs is non-nil and carries it;
// otherwise they are "dim_0", "dim_1", ...
//
// Structured (record) dtypes are rejected with ErrUnknownDType.
func FromZarray(meta io.Reader, attrs io.Reader) (Shape, error) {
	var za zarray
	if err := json.NewDecoder(meta).Decode(&za); err != nil {
		return Shape{}, fmt.Errorf("%w: decode .zarray: %v", ErrBadMetadata, err)
	}
	if za.ZarrFormat != 0 && za.ZarrFormat != 2 {
		return Shape{}, fmt.Errorf("%w: unsupported zarr_format %d", ErrBadMetadata, za.ZarrFormat)
	}

	var dtype string
	if err := json.Unmarshal(za.DType, &dtype); err != nil {
		return Shape{}, fmt.Errorf("%w: structured dtype %s", ErrUnknownDType, string(za.DType))
	}
	width, err := DTypeSize(dtype)
	if err != nil {
		return Shape{}, err
	}

	names := make([]string, len(za.Shape))
	for i := range names {
		names[i] = fmt.Sprintf("dim_%d", i)
	}
	if attrs != nil {
		var zt zattrs
		if err = json.NewDecoder(attrs).Decode(&zt); err != nil {
			return Shape{}, fmt.Errorf("%w: decode .zattrs: %v", ErrBadMetadata, err)
		}
		if zt.ArrayDimensions != nil {
			if len(zt.ArrayDimensions) != len(za.Shape) {
				return Shape{}, fmt.Errorf("%w: %d dimension names for %d axes",
					ErrBadMetadata, len(zt.ArrayDimensions), len(za.Shape))
			}
			copy(names, zt.ArrayDimensions)
		}
	}

	dims := make([]Dim, len(za.Shape))
	for i, n := range za.Shape {
		dims[i] = Dim{Name: names[i], Len: n}
	}

	return New(width, dims...)
}

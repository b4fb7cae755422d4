// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Dim is one named axis of a dataset.
type Dim struct {
	Name string
	Len  int
}

// Shape is the descriptor the planners consume: dimensions in caller order
// and the byte width of a single element.
//
// A zero Shape is not valid; build one with New or call Validate before use.
type Shape struct {
	Dims     []Dim
	ElemSize int
}

// New validates dims and elemSize and returns the resulting Shape.
// The dims slice is copied.
func New(elemSize int, dims ...Dim) (Shape, error) {
	s := Shape{Dims: append([]Dim(nil), dims...), ElemSize: elemSize}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}

	return s, nil
}

// Validate checks names are non-empty and unique, lengths are ≥ 1 and the
// element size is ≥ 1.
//
// Complexity: O(len(Dims)).
func (s Shape) Validate() error {
	if s.ElemSize < 1 {
		return fmt.Errorf("%w: got %d", ErrBadElemSize, s.ElemSize)
	}
	seen := make(map[string]struct{}, len(s.Dims))
	for i, d := range s.Dims {
		if d.Name == "" {
			return fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateDim, d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.Len < 1 {
			return fmt.Errorf("%w: %q has length %d", ErrBadLength, d.Name, d.Len)
		}
	}

	return nil
}

// Names returns the dimension names in caller order.
func (s Shape) Names() []string {
	names := make([]string, len(s.Dims))
	for i, d := range s.Dims {
		names[i] = d.Name
	}

	return names
}

// Len returns the length of the named dimension.
func (s Shape) Len(name string) (int, bool) {
	for _, d := range s.Dims {
		if d.Name == name {
			return d.Len, true
		}
	}

	return 0, false
}

// Lengths returns a name → length map.
func (s Shape) Lengths() map[string]int {
	out := make(map[string]int, len(s.Dims))
	for _, d := range s.Dims {
		out[d.Name] = d.Len
	}

	return out
}

// NBytes is the byte size of the whole array.
// Computed in float64 so that very large arrays saturate instead of wrapping;
// the value is exact up to 2^53 bytes.
func (s Shape) NBytes() float64 {
	b := float64(s.ElemSize)
	for _, d := range s.Dims {
		b *= float64(d.Len)
	}

	return b
}

// ChunkBytes is the byte size of one chunk. Dimensions absent from chunks
// count at their full length.
func (s Shape) ChunkBytes(chunks map[string]int) float64 {
	b := float64(s.ElemSize)
	for _, d := range s.Dims {
		c, ok := chunks[d.Name]
		if !ok {
			c = d.Len
		}
		b *= float64(c)
	}

	return b
}

// NumChunks returns ⌈len/chunk⌉ per dimension, i.e. how many chunks the
// plan cuts each axis into (the trailing chunk may be short).
// Dimensions absent from chunks, or with a non-positive chunk, count as one chunk.
func (s Shape) NumChunks(chunks map[string]int) map[string]int {
	out := make(map[string]int, len(s.Dims))
	for _, d := range s.Dims {
		c, ok := chunks[d.Name]
		if !ok || c < 1 || c >= d.Len {
			out[d.Name] = 1
			continue
		}
		out[d.Name] = (d.Len + c - 1) / c
	}

	return out
}

// String renders "(x: 100, y: 200) × 8B".
func (s Shape) String() string {
	out := "("
	for i, d := range s.Dims {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %d", d.Name, d.Len)
	}

	return out + fmt.Sprintf(") × %dB", s.ElemSize)
}

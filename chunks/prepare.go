// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
)

// request is the validated, order-independent form of a planner call that
// both searches work from.
type request struct {
	shape   shape.Shape
	opts    Options
	ratios  map[string]int // normalized and reduced to lowest terms
	chunked []string       // names with ratio ≥ 1, sorted
	lens    []int          // lengths of chunked, same order
	fixed   float64        // elemSize × Π len over unchunked dims
	target  float64
	slack   float64 // tolerance × target
	diags   ratio.Diagnostics
}

// prepare runs every check that precedes a search, in this order:
// options, shape, target size, aspect ratio.
func prepare(s shape.Shape, target any, ar ratio.AspectRatio, opts []Option) (*request, error) {
	o := gatherOptions(opts)
	if err := CheckTolerance(o.Tolerance); err != nil {
		return nil, err
	}
	if o.MaxSteps < 1 {
		o.MaxSteps = DefaultMaxSteps
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Dims) == 0 {
		return nil, ErrEmptyShape
	}

	nbytes, err := bytesize.Resolve(target)
	if err != nil {
		return nil, err
	}

	norm, diags, err := ratio.Normalize(s.Names(), ar, o.DefaultRatio, o.AllowExtraDims)
	if err != nil {
		return nil, err
	}

	r := &request{
		shape:  s,
		opts:   o,
		ratios: ratio.Reduce(norm),
		fixed:  float64(s.ElemSize),
		target: float64(nbytes),
		slack:  o.Tolerance * float64(nbytes),
		diags:  diags,
	}
	r.chunked = ratio.Chunked(r.ratios)
	lens := s.Lengths()
	for _, name := range r.chunked {
		r.lens = append(r.lens, lens[name])
	}
	for _, d := range s.Dims {
		if r.ratios[d.Name] == ratio.Unchunked {
			r.fixed *= float64(d.Len)
		}
	}

	return r, nil
}

// fits reports whether b bytes lie strictly inside the window.
func (r *request) fits(b float64) bool {
	return math.Abs(b-r.target) < r.slack
}

// above reports whether b bytes are at or past the upper window edge.
func (r *request) above(b float64) bool {
	return b-r.target >= r.slack
}

// below reports whether b bytes are at or short of the lower window edge.
func (r *request) below(b float64) bool {
	return r.target-b >= r.slack
}

// result assembles a Result from chunk lengths aligned with r.chunked.
func (r *request) result(algo Algorithm, lengths []int, b float64) Result {
	res := Result{
		Chunks:      make(map[string]int, len(r.shape.Dims)),
		Ordered:     make([]shape.Dim, 0, len(r.shape.Dims)),
		NBytes:      int64(b),
		Diagnostics: r.diags,
		Algorithm:   algo,
	}
	for _, d := range r.shape.Dims {
		res.Chunks[d.Name] = d.Len
	}
	for i, name := range r.chunked {
		res.Chunks[name] = lengths[i]
	}
	for _, d := range r.shape.Dims {
		res.Ordered = append(res.Ordered, shape.Dim{Name: d.Name, Len: res.Chunks[d.Name]})
	}

	return res
}

// noMatch wraps ErrNoMatchingChunks with the request parameters and a reason.
func (r *request) noMatch(algo Algorithm, reason string) error {
	return fmt.Errorf("%w: %s found no chunking of %s within %g%% of %s (%s)",
		ErrNoMatchingChunks, algo, r.shape, r.opts.Tolerance*100,
		bytesize.Format(int64(r.target)), reason)
}

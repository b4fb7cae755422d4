// SPDX-License-Identifier: MIT

package chunks

import (
	"fmt"

	"github.com/katalvlaran/rechunk/ratio"
)

// Defaults.
const (
	// DefaultTolerance is the relative size window: ±20% of the target.
	DefaultTolerance = 0.2

	// DefaultRatio leaves dimensions missing from the aspect ratio unchunked.
	DefaultRatio = ratio.Unchunked

	// DefaultMaxSteps bounds the even-divisor refinement walk (divisors
	// tried, summed over all levels).
	DefaultMaxSteps = 1 << 20
)

// Options configures a planner call.
//
//   - Tolerance      — relative size window, 0 < t ≤ 1.
//   - DefaultRatio   — ratio for dataset dims missing from the aspect ratio.
//   - AllowExtraDims — trim (instead of reject) ratio entries for unknown dims.
//   - MaxSteps       — refinement budget for EvenDivisor; once spent, the best
//     candidate found so far is returned. IterativeRatioIncrease is bounded
//     by the dimension lengths and ignores it.
type Options struct {
	Tolerance      float64
	DefaultRatio   int
	AllowExtraDims bool
	MaxSteps       int
}

// Option mutates Options before planning starts.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		DefaultRatio:   DefaultRatio,
		AllowExtraDims: false,
		MaxSteps:       DefaultMaxSteps,
	}
}

// CheckTolerance reports whether t is a usable size tolerance.
// Callers holding user input should check with it before WithTolerance.
func CheckTolerance(t float64) error {
	if !(t > 0 && t <= 1) {
		return fmt.Errorf("%w: got %g", ErrBadTolerance, t)
	}

	return nil
}

// WithTolerance sets the relative size window.
// Panics if t is outside (0, 1].
func WithTolerance(t float64) Option {
	if err := CheckTolerance(t); err != nil {
		panic(err.Error())
	}
	return func(o *Options) {
		o.Tolerance = t
	}
}

// WithDefaultRatio sets the ratio given to dimensions the aspect ratio omits.
// Panics unless r is -1 or ≥ 1.
func WithDefaultRatio(r int) Option {
	if _, err := ratio.Value("<default>", float64(r)); err != nil {
		panic(err.Error())
	}
	return func(o *Options) {
		o.DefaultRatio = r
	}
}

// WithAllowExtraDims trims aspect-ratio entries for dimensions the dataset
// does not have, reporting them as a ratio.Trimmed diagnostic.
func WithAllowExtraDims() Option {
	return func(o *Options) {
		o.AllowExtraDims = true
	}
}

// WithMaxSteps bounds the even-divisor refinement walk. Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic("chunks: WithMaxSteps(n<1)")
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

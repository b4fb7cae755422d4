// SPDX-License-Identifier: MIT

package ratio

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/rechunk/divisor"
)

// Value checks a single ratio value and returns it as an int.
//
// Errors:
//   - ErrNonInteger  — fractional, NaN or ±Inf.
//   - ErrOutOfRange  — 0 or ≤ -2.
//   - ErrTooLarge    — above MaxRatio.
func Value(dim string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, fmt.Errorf("%w. Got %s for dimension %s", ErrNonInteger, formatValue(v), dim)
	}
	if v == Unchunked {
		return Unchunked, nil
	}
	if v < 1 {
		return 0, fmt.Errorf("%w. Got %s for dimension %s", ErrOutOfRange, formatValue(v), dim)
	}
	if v > MaxRatio {
		return 0, fmt.Errorf("%w. Got %s for dimension %s, maximum is %d", ErrTooLarge, formatValue(v), dim, MaxRatio)
	}

	return int(v), nil
}

// Normalize validates ar against the dataset dimension names dims and
// returns a ratio for every name in dims.
//
// Contract:
//   - dims are the dataset's dimension names (unique; order is irrelevant).
//   - defaultRatio is applied to names in dims missing from ar; it is
//     validated like any other value.
//   - allowExtra decides whether names in ar but not in dims are an error
//     (ErrExtraDims) or are dropped with a Trimmed diagnostic.
//
// Complexity: O(k log k) for k = len(dims) + len(ar).
func Normalize(dims []string, ar AspectRatio, defaultRatio int, allowExtra bool) (map[string]int, Diagnostics, error) {
	var diags Diagnostics

	known := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		known[d] = struct{}{}
	}

	// Stage 1: entries for unknown dimensions.
	var extra []string
	for name := range ar {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		if !allowExtra {
			expected := append([]string(nil), dims...)
			sort.Strings(expected)

			return nil, nil, fmt.Errorf("%w. Got %v, expected %v", ErrExtraDims, extra, expected)
		}
		diags = append(diags, Diagnostic{
			Kind:    Trimmed,
			Dims:    extra,
			Message: fmt.Sprintf("Trimming dimensions %v from aspect ratio: not present in dataset", extra),
		})
	}

	// Stage 2: values, in sorted order so the first reported error is stable.
	def, err := Value("<default>", float64(defaultRatio))
	if err != nil {
		return nil, nil, err
	}
	names := append([]string(nil), dims...)
	sort.Strings(names)

	out := make(map[string]int, len(names))
	var missing []string
	for _, name := range names {
		v, ok := ar[name]
		if !ok {
			missing = append(missing, name)
			out[name] = def
			continue
		}
		if out[name], err = Value(name, v); err != nil {
			return nil, nil, err
		}
	}

	// Stage 3: report defaults.
	if len(missing) > 0 {
		diags = append(diags, Diagnostic{
			Kind: Defaulted,
			Dims: missing,
			Message: fmt.Sprintf("Dimensions %v are not specified in aspect ratio. Setting default value of %d for these dimensions",
				missing, def),
		})
	}

	return out, diags, nil
}

// Reduce divides every chunked (≥ 1) entry of m by their greatest common
// divisor. Unchunked entries are copied unchanged. m is not modified.
func Reduce(m map[string]int) map[string]int {
	vals := make([]int, 0, len(m))
	for _, v := range m {
		if v >= 1 {
			vals = append(vals, v)
		}
	}
	g := divisor.GCDAll(vals)

	out := make(map[string]int, len(m))
	for k, v := range m {
		if v >= 1 && g > 1 {
			v /= g
		}
		out[k] = v
	}

	return out
}

// Chunked returns the names with a ratio ≥ 1, sorted.
func Chunked(m map[string]int) []string {
	var out []string
	for k, v := range m {
		if v >= 1 {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// formatValue prints 1.5 as "1.5" and -100 as "-100".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

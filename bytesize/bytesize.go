// SPDX-License-Identifier: MIT

package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
)

// ErrInvalidTarget indicates a target that is not a positive, finite byte count.
var ErrInvalidTarget = errors.New("bytesize: invalid target size")

// Resolve converts target into a positive byte count.
//
// Errors: ErrInvalidTarget (wrapped with the offending value) for
// unsupported types, unparsable strings, NaN/Inf, and values below one byte.
func Resolve(target any) (int64, error) {
	switch v := target.(type) {
	case int:
		return fromInt(int64(v))
	case int8:
		return fromInt(int64(v))
	case int16:
		return fromInt(int64(v))
	case int32:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		return Parse(v)
	case fmt.Stringer:
		return Parse(v.String())
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidTarget, target)
	}
}

// Parse resolves a size string. Plain numbers (including exponent form such
// as "4e5") are taken as bytes; anything else goes through humanize.ParseBytes.
func Parse(s string) (int64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTarget)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return fromFloat(f)
	}

	n, err := humanize.ParseBytes(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTarget, s, err)
	}

	return fromUint(n)
}

// Format renders n with decimal units, e.g. 1000000 → "1MB".
func Format(n int64) string {
	return units.HumanSize(float64(n))
}

// FormatBinary renders n with binary units, e.g. 1048576 → "1MiB".
func FormatBinary(n int64) string {
	return units.BytesSize(float64(n))
}

func fromInt(n int64) (int64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTarget, n)
	}

	return n, nil
}

func fromUint(n uint64) (int64, error) {
	if n < 1 || n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTarget, n)
	}

	return int64(n), nil
}

func fromFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidTarget, f)
	}

	return int64(math.Floor(f)), nil
}

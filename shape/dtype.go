// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// namedWidths maps plain dtype names to their byte widths.
var namedWidths = map[string]int{
	"bool":        1,
	"int8":        1,
	"uint8":       1,
	"byte":        1,
	"int16":       2,
	"uint16":      2,
	"float16":     2,
	"int32":       4,
	"uint32":      4,
	"float32":     4,
	"int64":       8,
	"uint64":      8,
	"float64":     8,
	"complex64":   8,
	"complex128":  16,
	"datetime64":  8,
	"timedelta64": 8,
}

// DTypeSize returns the element byte width of a dtype.
//
// Accepted forms:
//   - plain names: "float64", "int16", "bool", "complex128", ...
//   - numpy/Zarr typestr: optional byte-order mark (<, >, |, =) followed by a
//     kind letter and a count, e.g. "<f8", "|u1", ">i4", "<c16", "|S12".
//     For the unicode kind "U" the count is characters (4 bytes each).
//     A unit suffix such as "<M8[ns]" is ignored.
//
// Unknown or zero-width dtypes return ErrUnknownDType.
func DTypeSize(dtype string) (int, error) {
	t := strings.ToLower(strings.TrimSpace(dtype))
	if w, ok := namedWidths[t]; ok {
		return w, nil
	}

	// numpy typestr; kind letters are case-sensitive, so work on the raw value.
	raw := strings.TrimSpace(dtype)
	if i := strings.IndexByte(raw, '['); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimLeft(raw, "<>|=")
	if len(raw) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, dtype)
	}
	kind, count := raw[0], raw[1:]
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, dtype)
	}

	switch kind {
	case 'b', 'i', 'u', 'f', 'c', 'm', 'M', 'S', 'V', 'a':
		return n, nil
	case 'U':
		return 4 * n, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDType, dtype)
	}
}

// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDims parses a comma-separated "name=length" list such as
// "time=8760,lat=721,lon=1440". Whitespace around tokens is ignored and the
// order of the input is preserved.
//
// The result is not checked for duplicates; pass it through New for that.
func ParseDims(raw string) ([]Dim, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	dims := make([]Dim, 0, len(parts))
	for _, part := range parts {
		name, length, ok := strings.Cut(part, "=")
		name, length = strings.TrimSpace(name), strings.TrimSpace(length)
		if !ok || name == "" || length == "" {
			return nil, fmt.Errorf("%w: %q (want name=length)", ErrBadDimSpec, strings.TrimSpace(part))
		}
		n, err := strconv.Atoi(length)
		if err != nil {
			return nil, fmt.Errorf("%w: length of %q: %v", ErrBadDimSpec, name, err)
		}
		dims = append(dims, Dim{Name: name, Len: n})
	}

	return dims, nil
}

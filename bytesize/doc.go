// Package bytesize resolves a target chunk size given either as a number of
// bytes or as a human-readable size string, and renders byte counts back into
// human form.
//
// Accepted targets:
//   - any Go integer kind (int, int64, uint32, ...);
//   - float32/float64 (fractional bytes are dropped: 1e6 and 1000000.7 both
//     resolve to 1000000);
//   - strings: plain numbers ("1e6", "250000") or sizes with decimal or
//     binary suffixes ("1MB" = 10^6, "1MiB" = 2^20, "2.5 GB", "512k");
//   - anything implementing fmt.Stringer, parsed as a string.
//
// Equivalent inputs resolve to the same integer, so 1e6 and "1MB" drive the
// planners to identical chunk vectors.
//
// Size strings are parsed by github.com/dustin/go-humanize; Format and
// FormatBinary use github.com/docker/go-units.
package bytesize

package bytesize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sizeFlag string

func (s sizeFlag) String() string { return string(s) }

// TestResolve_Equivalents verifies numeric and string forms agree.
func TestResolve_Equivalents(t *testing.T) {
	inputs := []any{
		1e6, float32(1e6), 1000000, int64(1000000), uint32(1000000),
		"1MB", "1 MB", "1000kB", "1e6", " 1000000 ", sizeFlag("1MB"), 1000000.7,
	}
	for _, in := range inputs {
		got, err := bytesize.Resolve(in)
		require.NoError(t, err, "input %#v", in)
		assert.Equal(t, int64(1_000_000), got, "input %#v", in)
	}
}

func TestResolve_BinarySuffix(t *testing.T) {
	got, err := bytesize.Resolve("1MiB")
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), got)

	got, err = bytesize.Resolve("2GiB")
	require.NoError(t, err)
	assert.Equal(t, int64(2<<30), got)
}

func TestResolve_Invalid(t *testing.T) {
	inputs := []any{
		0, -5, int8(-1), uint(0), 0.5, math.NaN(), math.Inf(1), -1e6,
		"", "   ", "lots", "-1MB", "0", "12 parsecs", struct{}{}, nil,
	}
	for _, in := range inputs {
		_, err := bytesize.Resolve(in)
		assert.ErrorIs(t, err, bytesize.ErrInvalidTarget, "input %#v", in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1MB", bytesize.Format(1_000_000))
	assert.Equal(t, "960kB", bytesize.Format(960_000))
	assert.Equal(t, "1MiB", bytesize.FormatBinary(1<<20))
}

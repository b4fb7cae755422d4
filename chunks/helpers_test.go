package chunks_test

import (
	"testing"

	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/shape"
	"github.com/stretchr/testify/require"
)

// float64Bytes is the element width used throughout, matching a float64 array.
const float64Bytes = 8

// dataset builds a float64 shape from (name, len) pairs in the given order.
func dataset(t testing.TB, pairs ...any) shape.Shape {
	t.Helper()
	require.Zero(t, len(pairs)%2, "dataset wants name/len pairs")

	dims := make([]shape.Dim, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		dims = append(dims, shape.Dim{Name: pairs[i].(string), Len: pairs[i+1].(int)})
	}
	s, err := shape.New(float64Bytes, dims...)
	require.NoError(t, err)

	return s
}

// namedPlanner pairs a Planner with its algorithm name for subtests.
type namedPlanner struct {
	name string
	plan chunks.Planner
}

// planners lists every registered algorithm in Algorithms order.
func planners() []namedPlanner {
	reg := chunks.Planners()
	out := make([]namedPlanner, 0, len(reg))
	for _, a := range chunks.Algorithms() {
		out = append(out, namedPlanner{name: a.String(), plan: reg[a]})
	}

	return out
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPlanCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "plan",
		"--dims", "x=300,y=300,z=300", "--target", "1MB", "--ratio", "x=1,y=1,z=10", "-o", "json")
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "even-divisor", got.Algorithm)
	assert.Equal(t, []dimReport{
		{Name: "x", Len: 300, Chunk: 100, NChunks: 3},
		{Name: "y", Len: 300, Chunk: 100, NChunks: 3},
		{Name: "z", Len: 300, Chunk: 12, NChunks: 25},
	}, got.Dims)
	assert.Equal(t, int64(960000), got.ChunkBytes)
	assert.Equal(t, 225, got.TotalChunks)
	assert.Equal(t, int64(216_000_000), got.ArrayBytes)
	assert.Equal(t, "216MB", got.ArraySize)
}

func TestPlanCmd_BinaryUnits(t *testing.T) {
	out, _, err := execute(t, "plan", "--binary",
		"--dims", "x=300,y=300,z=300", "--target", "1MB", "--ratio", "x=1,y=1,z=10")
	require.NoError(t, err)
	assert.Contains(t, out, "chunk size: 937.5KiB (960000 bytes), 225 chunks\n")
	assert.Contains(t, out, "array size: 206MiB (216000000 bytes)\n")
}

func TestPlanCmd_IterativeText(t *testing.T) {
	out, _, err := execute(t, "plan", "-a", "iterative",
		"--dims", "x=100,y=100,z=100", "--target", "400000", "--tolerance", "0.01",
		"--ratio", "x=-1,y=2,z=10")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: iterative\n")
	assert.Contains(t, out, "chunk size: 400kB (400000 bytes), 20 chunks\n")
}

func TestPlanCmd_DiagnosticsLogged(t *testing.T) {
	out, logs, err := execute(t, "plan", "--log-format", "json",
		"--dims", "x=100,y=200,z=300", "--target", "5MB", "--ratio", "x=1,z=10,w=3",
		"--allow-extra-dims", "-o", "yaml")
	require.NoError(t, err)

	var got report
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Diagnostics, 2)
	assert.Contains(t, logs, `"level":"warn"`)
	assert.Contains(t, logs, "Trimming dimensions")
	assert.NotContains(t, logs, `"chunk plan"`, "info is below the default level")
}

func TestPlanCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "plan", "--dims", "x=10,y=10,z=10", "--target", "40GB",
		"--ratio", "x=-1,y=2,z=10", "--tolerance", "0.01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chunks.ErrNoMatchingChunks))
	assert.Equal(t, 2, exitCode(err))

	_, _, err = execute(t, "plan", "--dims", "x=1,y=2,z=3", "--target", "1MB", "--ratio", "x=1,y=1.5")
	require.ErrorIs(t, err, ratio.ErrNonInteger)
	assert.Equal(t, 1, exitCode(err))

	_, _, err = execute(t, "plan", "--dims", "x=10", "--target", "1kB", "-a", "annealing")
	assert.ErrorIs(t, err, chunks.ErrUnknownAlgorithm)

	_, _, err = execute(t, "plan", "--dims", "x=10", "--target", "1kB", "-o", "xml")
	assert.ErrorContains(t, err, "--output")

	_, _, err = execute(t, "plan", "--dims", "x=10", "--target", "1kB", "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")

	assert.Equal(t, 0, exitCode(nil))
}

func TestPlanCmd_ConfigAlgorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dims: x=100,y=100,z=100
target: 1MB
ratio: {x: 1, y: 1, z: 1}
algorithm: iterative
`), 0o600))

	out, _, err := execute(t, "plan", "-c", path, "-o", "json")
	require.NoError(t, err)
	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "iterative", got.Algorithm)
	assert.Equal(t, 47, got.Dims[0].Chunk)

	out, _, err = execute(t, "plan", "-c", path, "-o", "json", "-a", "even-divisor")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "even-divisor", got.Algorithm)
	assert.Equal(t, 50, got.Dims[0].Chunk)
}

func TestCompareCmd(t *testing.T) {
	out, _, err := execute(t, "compare", "-o", "json",
		"--dims", "x=100,y=200,z=300", "--target", "1MB", "--ratio", "x=6,y=-1,z=2")
	require.NoError(t, err)

	var got []report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, []int{10, 200, 60}, chunkLens(got[0]))
	assert.Equal(t, []int{8, 200, 72}, chunkLens(got[1]))
}

// A 1000×1000 array at ratio 1:1000 overshoots 100 bytes in the iterative
// search, and no divisor combination fits either.
func TestCompareCmd_NoMatch(t *testing.T) {
	out, _, err := execute(t, "compare",
		"--dims", "x=1000,y=1000", "--target", "100", "--ratio", "x=1,y=1000")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, out, "algorithm: even-divisor\nerror: ")
	assert.Contains(t, out, "smallest chunk")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func chunkLens(r report) []int {
	out := make([]int, len(r.Dims))
	for i, d := range r.Dims {
		out[i] = d.Chunk
	}

	return out
}

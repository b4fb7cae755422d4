// SPDX-License-Identifier: MIT

// Command chunkplan proposes chunk shapes for n-dimensional arrays.
//
//	chunkplan plan --dims time=8760,lat=721,lon=1440 --dtype float64 \
//	    --target 100MB --ratio time=1,lat=4,lon=8
//	chunkplan compare --zarray data.zarr/t2m/.zarray --target 64MiB
//	chunkplan plan --config request.yaml --output json
//
// Exit status: 0 on success, 2 when no chunking fits the size window,
// 1 for every other error.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rechunk/chunks"
	"github.com/pkg/errors"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chunkplan: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, chunks.ErrNoMatchingChunks):
		return 2
	default:
		return 1
	}
}

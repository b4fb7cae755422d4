// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/shape"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// format is an output encoding.
type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatYAML format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", errors.Errorf("--output: unknown format %q (want text, json or yaml)", s)
	}
}

// dimReport is one dimension of a plan, in dataset order.
type dimReport struct {
	Name    string `json:"name" yaml:"name"`
	Len     int    `json:"len" yaml:"len"`
	Chunk   int    `json:"chunk" yaml:"chunk"`
	NChunks int    `json:"n_chunks" yaml:"n_chunks"`
}

// report is the rendered form of one algorithm's outcome.
type report struct {
	Algorithm   string      `json:"algorithm" yaml:"algorithm"`
	Dims        []dimReport `json:"dims,omitempty" yaml:"dims,omitempty"`
	ChunkBytes  int64       `json:"chunk_bytes,omitempty" yaml:"chunk_bytes,omitempty"`
	ChunkSize   string      `json:"chunk_size,omitempty" yaml:"chunk_size,omitempty"`
	TotalChunks int         `json:"total_chunks,omitempty" yaml:"total_chunks,omitempty"`
	ArrayBytes  int64       `json:"array_bytes,omitempty" yaml:"array_bytes,omitempty"`
	ArraySize   string      `json:"array_size,omitempty" yaml:"array_size,omitempty"`
	Diagnostics []string    `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Error       string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// sizeFormatter renders a byte count for humans.
type sizeFormatter func(int64) string

// sizes picks SI (kB, MB) or binary (KiB, MiB) units.
func sizes(binary bool) sizeFormatter {
	if binary {
		return bytesize.FormatBinary
	}

	return bytesize.Format
}

func newReport(s shape.Shape, res chunks.Result, size sizeFormatter) report {
	counts := s.NumChunks(res.Chunks)
	whole := int64(s.NBytes())
	r := report{
		Algorithm:   res.Algorithm.String(),
		Dims:        make([]dimReport, 0, len(res.Ordered)),
		ChunkBytes:  res.NBytes,
		ChunkSize:   size(res.NBytes),
		TotalChunks: 1,
		ArrayBytes:  whole,
		ArraySize:   size(whole),
		Diagnostics: res.Diagnostics.Strings(),
	}
	for i, d := range res.Ordered {
		n := counts[d.Name]
		r.Dims = append(r.Dims, dimReport{Name: d.Name, Len: s.Dims[i].Len, Chunk: d.Len, NChunks: n})
		r.TotalChunks *= n
	}

	return r
}

func render(w io.Writer, output string, r report) error {
	f, err := parseFormat(output)
	if err != nil {
		return err
	}
	switch f {
	case formatJSON:
		return encodeJSON(w, r)
	case formatYAML:
		return encodeYAML(w, r)
	default:
		return writeText(w, r)
	}
}

func renderAll(w io.Writer, output string, rs []report) error {
	f, err := parseFormat(output)
	if err != nil {
		return err
	}
	switch f {
	case formatJSON:
		return encodeJSON(w, rs)
	case formatYAML:
		return encodeYAML(w, rs)
	}
	for i, r := range rs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeText(w, r); err != nil {
			return err
		}
	}

	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "encoding json")
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}

	return errors.Wrap(enc.Close(), "encoding yaml")
}

// writeText prints an aligned table:
//
//	algorithm: even-divisor
//	DIM   LEN   CHUNK  N_CHUNKS
//	x     300   100    3
//	...
//	chunk size: 960kB (960000 bytes), 225 chunks
//	array size: 216MB (216000000 bytes)
func writeText(w io.Writer, r report) error {
	fmt.Fprintf(w, "algorithm: %s\n", r.Algorithm)
	if r.Error != "" {
		_, err := fmt.Fprintf(w, "error: %s\n", r.Error)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIM\tLEN\tCHUNK\tN_CHUNKS")
	for _, d := range r.Dims {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", d.Name, d.Len, d.Chunk, d.NChunks)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "note: %s\n", d)
	}
	fmt.Fprintf(w, "chunk size: %s (%d bytes), %d chunks\n", r.ChunkSize, r.ChunkBytes, r.TotalChunks)
	_, err := fmt.Fprintf(w, "array size: %s (%d bytes)\n", r.ArraySize, r.ArrayBytes)

	return err
}

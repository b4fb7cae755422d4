// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/ratio"
	"github.com/katalvlaran/rechunk/shape"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// request is everything a planning run needs. It is filled from flags and,
// optionally, from a YAML file given with --config. Tolerance and
// DefaultRatio are pointers so that an explicit 0 in the file is kept and
// rejected instead of being read as "unset".
type request struct {
	Dims           string            `yaml:"dims,omitempty"`
	DType          string            `yaml:"dtype,omitempty"`
	ElemSize       int               `yaml:"elem_size,omitempty"`
	Zarray         string            `yaml:"zarray,omitempty"`
	Zattrs         string            `yaml:"zattrs,omitempty"`
	Target         string            `yaml:"target,omitempty"`
	Ratio          ratio.AspectRatio `yaml:"ratio,omitempty"`
	Tolerance      *float64          `yaml:"tolerance,omitempty"`
	DefaultRatio   *int              `yaml:"default_ratio,omitempty"`
	AllowExtraDims bool              `yaml:"allow_extra_dims,omitempty"`
	Algorithm      string            `yaml:"algorithm,omitempty"`
}

// requestFlags binds a request to a flag set.
type requestFlags struct {
	req          request
	ratio        ratioFlag
	tolerance    float64
	defaultRatio int
	config       string
}

func newRequestFlags() *requestFlags {
	return &requestFlags{
		req:          request{DType: "float64"},
		tolerance:    chunks.DefaultTolerance,
		defaultRatio: chunks.DefaultRatio,
	}
}

func (rf *requestFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&rf.req.Dims, "dims", "", `dimensions in order, e.g. "time=8760,lat=721,lon=1440"`)
	fs.StringVar(&rf.req.DType, "dtype", rf.req.DType, "element type (float64, int16, <f4, ...)")
	fs.IntVar(&rf.req.ElemSize, "elem-size", 0, "element size in bytes; overrides --dtype")
	fs.StringVar(&rf.req.Zarray, "zarray", "", "read dims and dtype from a Zarr v2 .zarray file")
	fs.StringVar(&rf.req.Zattrs, "zattrs", "", "Zarr .zattrs carrying _ARRAY_DIMENSIONS (default: next to --zarray)")
	fs.StringVarP(&rf.req.Target, "target", "t", "", `target chunk size, e.g. 100MB, 64MiB, 1e6`)
	fs.VarP(&rf.ratio, "ratio", "r", `aspect ratio, e.g. "time=1,lat=-1,lon=4" (-1 keeps a dimension whole)`)
	fs.Float64Var(&rf.tolerance, "tolerance", rf.tolerance, "relative size window around the target, in (0, 1]")
	fs.IntVar(&rf.defaultRatio, "default-ratio", rf.defaultRatio, "ratio for dimensions missing from --ratio")
	fs.BoolVar(&rf.req.AllowExtraDims, "allow-extra-dims", false, "drop --ratio entries for dimensions the array lacks")
	fs.StringVarP(&rf.config, "config", "c", "", "YAML request file; explicit flags take precedence")
}

// flagNames maps request fields to the flags that set them.
var flagNames = map[string]string{
	"dims":             "dims",
	"dtype":            "dtype",
	"elem_size":        "elem-size",
	"zarray":           "zarray",
	"zattrs":           "zattrs",
	"target":           "target",
	"ratio":            "ratio",
	"tolerance":        "tolerance",
	"default_ratio":    "default-ratio",
	"allow_extra_dims": "allow-extra-dims",
}

// resolve returns the effective request: flag values, overlaid on the config
// file for every flag the user did not set explicitly.
func (rf *requestFlags) resolve(fs *pflag.FlagSet) (request, error) {
	fromFlags := rf.req
	fromFlags.Ratio = rf.ratio.value()
	tolerance, defaultRatio := rf.tolerance, rf.defaultRatio
	fromFlags.Tolerance = &tolerance
	fromFlags.DefaultRatio = &defaultRatio
	if rf.config == "" {
		return fromFlags, nil
	}

	fromFile, err := loadRequest(rf.config)
	if err != nil {
		return request{}, err
	}

	return merge(fromFile, fromFlags, func(field string) bool {
		return fs.Changed(flagNames[field])
	}), nil
}

func loadRequest(path string) (request, error) {
	f, err := os.Open(path)
	if err != nil {
		return request{}, errors.Wrap(err, "opening request file")
	}
	defer f.Close()

	var req request
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		return request{}, errors.Wrapf(err, "decoding request file %s", path)
	}

	return req, nil
}

// merge starts from flags and takes a file value for every field that is set
// in the file and whose flag was not changed.
func merge(file, flags request, changed func(field string) bool) request {
	out := flags
	take := func(field string, set bool, apply func()) {
		if set && !changed(field) {
			apply()
		}
	}
	take("dims", file.Dims != "", func() { out.Dims = file.Dims })
	take("dtype", file.DType != "", func() { out.DType = file.DType })
	take("elem_size", file.ElemSize != 0, func() { out.ElemSize = file.ElemSize })
	take("zarray", file.Zarray != "", func() { out.Zarray = file.Zarray })
	take("zattrs", file.Zattrs != "", func() { out.Zattrs = file.Zattrs })
	take("target", file.Target != "", func() { out.Target = file.Target })
	take("ratio", file.Ratio != nil, func() { out.Ratio = file.Ratio.Clone() })
	take("tolerance", file.Tolerance != nil, func() { out.Tolerance = file.Tolerance })
	take("default_ratio", file.DefaultRatio != nil, func() { out.DefaultRatio = file.DefaultRatio })
	take("allow_extra_dims", file.AllowExtraDims, func() { out.AllowExtraDims = true })
	if file.Algorithm != "" {
		out.Algorithm = file.Algorithm
	}

	return out
}

// planInput is a request turned into planner arguments.
type planInput struct {
	shape  shape.Shape
	target int64
	ratio  ratio.AspectRatio
	opts   []chunks.Option
}

// build validates the user-facing parts of a request. Ratio values are left
// to the planner, which reports them with dimension context.
func (r request) build() (planInput, error) {
	s, err := r.shape()
	if err != nil {
		return planInput{}, err
	}

	if strings.TrimSpace(r.Target) == "" {
		return planInput{}, errors.New("--target is required")
	}
	target, err := bytesize.Resolve(r.Target)
	if err != nil {
		return planInput{}, errors.Wrap(err, "--target")
	}

	tolerance, defaultRatio := chunks.DefaultTolerance, chunks.DefaultRatio
	if r.Tolerance != nil {
		tolerance = *r.Tolerance
	}
	if r.DefaultRatio != nil {
		defaultRatio = *r.DefaultRatio
	}
	if err := chunks.CheckTolerance(tolerance); err != nil {
		return planInput{}, errors.Wrap(err, "--tolerance")
	}
	if _, err := ratio.Value("<default>", float64(defaultRatio)); err != nil {
		return planInput{}, errors.Wrap(err, "--default-ratio")
	}

	opts := []chunks.Option{
		chunks.WithTolerance(tolerance),
		chunks.WithDefaultRatio(defaultRatio),
	}
	if r.AllowExtraDims {
		opts = append(opts, chunks.WithAllowExtraDims())
	}

	return planInput{shape: s, target: target, ratio: r.Ratio, opts: opts}, nil
}

func (r request) shape() (shape.Shape, error) {
	if r.Zarray != "" {
		if r.Dims != "" {
			return shape.Shape{}, errors.New("--dims and --zarray are mutually exclusive")
		}
		return readZarr(r.Zarray, r.Zattrs)
	}
	if r.Dims == "" {
		return shape.Shape{}, errors.New("one of --dims or --zarray is required")
	}

	dims, err := shape.ParseDims(r.Dims)
	if err != nil {
		return shape.Shape{}, errors.Wrap(err, "--dims")
	}
	elem := r.ElemSize
	if elem == 0 {
		if elem, err = shape.DTypeSize(r.DType); err != nil {
			return shape.Shape{}, errors.Wrap(err, "--dtype")
		}
	}
	s, err := shape.New(elem, dims...)
	if err != nil {
		return shape.Shape{}, errors.Wrap(err, "--dims")
	}

	return s, nil
}

// readZarr loads a shape from .zarray metadata. A missing .zattrs is fine
// unless it was asked for explicitly.
func readZarr(zarray, zattrs string) (shape.Shape, error) {
	meta, err := os.Open(zarray)
	if err != nil {
		return shape.Shape{}, errors.Wrap(err, "--zarray")
	}
	defer meta.Close()

	explicit := zattrs != ""
	if !explicit {
		zattrs = strings.TrimSuffix(zarray, ".zarray") + ".zattrs"
	}
	attrs, err := os.Open(zattrs)
	switch {
	case err == nil:
		defer attrs.Close()
		s, err := shape.FromZarray(meta, attrs)
		return s, errors.Wrapf(err, "reading %s", zarray)
	case explicit || !os.IsNotExist(err):
		return shape.Shape{}, errors.Wrap(err, "--zattrs")
	}

	s, err := shape.FromZarray(meta, nil)
	return s, errors.Wrapf(err, "reading %s", zarray)
}

// ratioFlag is a pflag.Value for "name=value,..." aspect ratios. Values are
// kept as floats so non-integers reach the normalizer and fail there.
type ratioFlag struct {
	ar ratio.AspectRatio
}

var _ pflag.Value = (*ratioFlag)(nil)

func (f *ratioFlag) String() string {
	if len(f.ar) == 0 {
		return ""
	}
	names := make([]string, 0, len(f.ar))
	for name := range f.ar {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + strconv.FormatFloat(f.ar[name], 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

// Set accepts repeated use; later entries win.
func (f *ratioFlag) Set(s string) error {
	if f.ar == nil {
		f.ar = ratio.AspectRatio{}
	}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		name, raw, ok := strings.Cut(part, "=")
		name, raw = strings.TrimSpace(name), strings.TrimSpace(raw)
		if !ok || name == "" {
			return errors.Errorf("invalid ratio entry %q: want name=value", part)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Wrapf(err, "ratio for %s", name)
		}
		f.ar[name] = v
	}

	return nil
}

func (f *ratioFlag) Type() string {
	return "name=ratio,..."
}

func (f *ratioFlag) value() ratio.AspectRatio {
	if f.ar == nil {
		return nil
	}

	return f.ar.Clone()
}

func (p planInput) String() string {
	return fmt.Sprintf("%s target=%s", p.shape, bytesize.Format(p.target))
}

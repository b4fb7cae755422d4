// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/rechunk/bytesize"
	"github.com/katalvlaran/rechunk/chunks"
	"github.com/katalvlaran/rechunk/shape"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a logger writing to w. format is "console" (human
// readable, development encoder) or "json" (production encoder).
func newLogger(format, level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}

	var enc zapcore.Encoder
	switch format {
	case "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.Errorf("--log-format: unknown format %q (want console or json)", format)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// logPlan reports normalization diagnostics as warnings and the plan itself
// at info level.
func logPlan(l *zap.Logger, s shape.Shape, res chunks.Result) {
	for _, d := range res.Diagnostics {
		l.Warn(d.Message, zap.Stringer("kind", d.Kind), zap.Strings("dims", d.Dims))
	}

	total := 1
	for _, n := range s.NumChunks(res.Chunks) {
		total *= n
	}
	l.Info("chunk plan",
		zap.Stringer("algorithm", res.Algorithm),
		zap.Any("chunks", res.Chunks),
		zap.Int64("chunk_bytes", res.NBytes),
		zap.String("chunk_size", bytesize.Format(res.NBytes)),
		zap.Int("total_chunks", total),
	)
}

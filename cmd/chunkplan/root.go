// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rechunk/chunks"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globals are the persistent flags shared by every sub-command.
type globals struct {
	logFormat string
	logLevel  string
	output    string
	binary    bool
	logger    *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "chunkplan",
		Short:         "Propose chunk shapes for n-dimensional arrays",
		Long:          "chunkplan picks chunk lengths whose byte size lands near a target while the\nnumber of chunks per dimension follows a requested aspect ratio.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if _, err := parseFormat(g.output); err != nil {
				return err
			}
			logger, err := newLogger(g.logFormat, g.logLevel, stderr)
			if err != nil {
				return err
			}
			g.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&g.logFormat, "log-format", "console", "log encoding: console or json")
	pf.StringVar(&g.logLevel, "log-level", "warn", "minimum log level: debug, info, warn, error")
	pf.StringVarP(&g.output, "output", "o", "text", "output format: text, json or yaml")
	pf.BoolVar(&g.binary, "binary", false, "report sizes in binary units (KiB, MiB) instead of SI (kB, MB)")

	root.AddCommand(newPlanCmd(g, stdout), newCompareCmd(g, stdout), newVersionCmd(stdout))

	return root
}

func newPlanCmd(g *globals, stdout io.Writer) *cobra.Command {
	rf := newRequestFlags()
	algo := chunks.EvenDivisorAlgo.String()

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan chunks with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algorithm") || req.Algorithm == "" {
				req.Algorithm = algo
			}
			a, err := chunks.ParseAlgorithm(req.Algorithm)
			if err != nil {
				return errors.Wrap(err, "--algorithm")
			}
			p, err := req.build()
			if err != nil {
				return err
			}

			g.logger.Debug("planning", zap.Stringer("request", p), zap.Stringer("algorithm", a))
			res, err := chunks.Plan(a, p.shape, p.target, p.ratio, p.opts...)
			if err != nil {
				g.logger.Debug("planning failed", zap.Stringer("algorithm", a), zap.Error(err))
				return errors.Wrapf(err, "planning %s", p.shape)
			}
			logPlan(g.logger, p.shape, res)

			return render(stdout, g.output, newReport(p.shape, res, sizes(g.binary)))
		},
	}
	rf.register(cmd.Flags())
	cmd.Flags().StringVarP(&algo, "algorithm", "a", algo, "search algorithm: even-divisor or iterative")

	return cmd
}

func newCompareCmd(g *globals, stdout io.Writer) *cobra.Command {
	rf := newRequestFlags()

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Plan chunks with every algorithm and print the plans side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			p, err := req.build()
			if err != nil {
				return err
			}

			g.logger.Debug("comparing", zap.Stringer("request", p))
			var (
				reports  []report
				firstErr error
				matched  bool
			)
			for _, a := range chunks.Algorithms() {
				res, err := chunks.Plan(a, p.shape, p.target, p.ratio, p.opts...)
				if err != nil {
					// Validation failures are shared by every algorithm.
					if !errors.Is(err, chunks.ErrNoMatchingChunks) {
						return errors.Wrapf(err, "planning %s", p.shape)
					}
					g.logger.Info("no match", zap.Stringer("algorithm", a), zap.Error(err))
					if firstErr == nil {
						firstErr = err
					}
					reports = append(reports, report{Algorithm: a.String(), Error: err.Error()})
					continue
				}
				matched = true
				logPlan(g.logger, p.shape, res)
				reports = append(reports, newReport(p.shape, res, sizes(g.binary)))
			}

			if err := renderAll(stdout, g.output, reports); err != nil {
				return err
			}
			if !matched {
				return errors.Wrapf(firstErr, "planning %s", p.shape)
			}

			return nil
		},
	}
	rf.register(cmd.Flags())

	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chunkplan version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(stdout, version)
		},
	}
}

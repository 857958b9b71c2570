// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvcorr/correlation"
	"github.com/katalvlaran/lvcorr/dataset"
	"github.com/katalvlaran/lvcorr/internal/config"
	"github.com/katalvlaran/lvcorr/internal/logger"
	"github.com/katalvlaran/lvcorr/internal/report"
	"github.com/katalvlaran/lvcorr/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errReported marks a failure whose message was already shown to the user.
var errReported = errors.New("lvcorr: error already reported")

const applicationErrorMessage = "Could not generate the desired set of correlations, due to an application error."

func newRunCmd() *cobra.Command {
	var cfgFile string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compute correlations between two columns",
		Long: `Compute the correlation between two columns of a measurements file.
Missing --file or column flags are asked for interactively.

Example:
  lvcorr run --file data.csv --first Height --second Age --method linear,kendall`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := runCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "Path to a YAML or JSON config file")
	f.StringP("file", "f", "", "Measurements file (prompted for when empty)")
	f.String("first", "", "First column name (prompted for when empty)")
	f.String("second", "", "Second column name (prompted for when empty)")
	f.StringSliceP("method", "m", []string{"linear", "spearman", "kendall"}, "Evaluators to run: linear|pearson, spearman, kendall")
	f.String("format", config.FormatText, "Output format: text or json")
	f.String("plot", "", "Write a scatter plot of both columns (png, svg, pdf by extension)")
	f.String("delimiter", ",", "Field separator")
	f.Int("max-rows", 0, "Reject files with more data rows (0 = unlimited)")
	f.String("log-level", "warn", "Log level (debug, info, warn, error)")

	return runCmd
}

// run executes one correlation session against cfg.
func run(ctx context.Context, cfg config.Config, log *zap.Logger, in io.Reader, out io.Writer) error {
	evaluators, err := cfg.Evaluators()
	if err != nil {
		return err
	}

	p := newPrompter(in, out)
	file := cfg.File
	if file == "" {
		if file, err = p.filename(); err != nil {
			return err
		}
		if file == "" {
			return nil
		}
	}
	first, second := cfg.Columns.First, cfg.Columns.Second
	if first == "" {
		if first, err = p.columnName("first"); err != nil {
			return err
		}
	}
	if second == "" {
		if second, err = p.columnName("second"); err != nil {
			return err
		}
	}
	columns := []string{first, second}

	log.Info("loading measurements", zap.String("file", file), zap.Strings("columns", columns))
	m, err := dataset.LoadFile(file, columns,
		dataset.WithDelimiter(cfg.DelimiterRune()),
		dataset.WithMaxRows(cfg.MaxRows),
	)
	if err != nil {
		log.Error("load failed", zap.String("file", file), zap.Error(err))
		if isApplicationError(err) {
			fmt.Fprintln(out, applicationErrorMessage)
			fmt.Fprintln(out, err)
			return errReported
		}
		return err
	}
	log.Info("measurements loaded", zap.Int("rows", m.Rows()))

	results, err := correlation.EvaluateAll(ctx, m, timed(evaluators, log)...)
	if err != nil {
		log.Error("evaluation failed", zap.Error(err))
		return err
	}

	rep := report.Report{File: file, Columns: columns, Rows: m.Rows(), Results: results}
	if err = write(out, cfg.Format, rep); err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err = report.Scatter(m, first, second, cfg.Plot); err != nil {
			log.Error("plot failed", zap.String("path", cfg.Plot), zap.Error(err))
			return err
		}
		log.Info("scatter plot written", zap.String("path", cfg.Plot))
	}

	return nil
}

func write(out io.Writer, format string, rep report.Report) error {
	if format == config.FormatJSON {
		return report.WriteJSON(out, rep)
	}

	return report.WriteText(out, rep)
}

// isApplicationError reports whether err stems from the measurements content
// rather than from the environment.
func isApplicationError(err error) bool {
	return errors.Is(err, dataset.ErrCorruptFile) ||
		errors.Is(err, dataset.ErrNoColumns) ||
		errors.Is(err, dataset.ErrTooManyRows)
}

// timedEvaluator logs how long each evaluation takes.
type timedEvaluator struct {
	correlation.Evaluator
	log *zap.Logger
}

func (e timedEvaluator) Evaluate(m *matrix.Matrix) (float64, error) {
	start := time.Now()
	v, err := e.Evaluator.Evaluate(m)
	e.log.Debug("evaluated",
		zap.String("evaluator", e.Name()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("value", v),
	)

	return v, err
}

func timed(evaluators []correlation.Evaluator, log *zap.Logger) []correlation.Evaluator {
	out := make([]correlation.Evaluator, len(evaluators))
	for i, e := range evaluators {
		out[i] = timedEvaluator{Evaluator: e, log: log}
	}

	return out
}

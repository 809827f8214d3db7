// Command aoc2021 prints the answers to an Advent of Code 2021 puzzle.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	aoc "github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/y2021"
)

type options struct {
	configPath string
	inputDir   string
	debug      bool
	sample     bool
	all        bool
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		cfg    aoc.Config
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:   "aoc2021 <day>",
		Short: "Solve an Advent of Code 2021 puzzle",
		Long: `Reads the puzzle input for the given day from <inputs>/dayNN and
prints the part one and part two answers.

Example:
  aoc2021 8
  aoc2021 --sample 8
  aoc2021 --all --inputs ./inputs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.all {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) == 0 {
				return errors.New("a day is required")
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = aoc.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("inputs") {
				cfg.InputDir = opts.inputDir
			}
			if opts.debug {
				cfg.LogLevel = "debug"
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(level)
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &aoc.Runner{
				Days:     y2021.Solvers(),
				InputDir: cfg.InputDir,
				Logger:   logger,
			}
			return run(cmd, r, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", aoc.DefaultConfigFile, "YAML config file")
	f.StringVar(&opts.inputDir, "inputs", aoc.DefaultConfig().InputDir, "directory holding the dayNN input files")
	f.BoolVar(&opts.debug, "debug", false, "debug logging")
	f.BoolVar(&opts.sample, "sample", false, "run against the published example instead of the input file")
	f.BoolVar(&opts.all, "all", false, "run every registered day")
	return cmd
}

func run(cmd *cobra.Command, r *aoc.Runner, opts options, args []string) error {
	var days []int
	if opts.all {
		days = r.Days.Sorted()
	} else {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", args[0], err)
		}
		days = []int{day}
	}

	solve := r.Solve
	if opts.sample {
		samples, err := y2021.Samples()
		if err != nil {
			return err
		}
		r.Samples = samples
		solve = r.SolveSample
	}

	out := cmd.OutOrStdout()
	for _, day := range days {
		r.Logger.Info("running solution", zap.Int("day", day), zap.Bool("sample", opts.sample))
		res, err := solve(day)
		if err != nil {
			return err
		}
		if opts.all {
			fmt.Fprintf(out, "day %d\n", day)
		}
		if err := res.Print(out); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Package aoc is the small runtime shared by the daily puzzle solvers:
// a dispatch table from day to solver, an input loader, embedded sample
// checking and a handful of parsing, grid and graph helpers.
package aoc

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

var (
	// ErrNoSolver is returned when no solver is registered for a day.
	ErrNoSolver = errors.New("no solver registered")
	// ErrNoSample is returned when a day has no embedded sample.
	ErrNoSample = errors.New("no sample found")
)

// Solver computes the part one and part two answers for a day's input.
// Solvers are pure: the same lines always give the same answers.
type Solver func(lines []string) (part1, part2 int)

// Days maps a day number to its solver. It is built once and not
// modified afterwards.
type Days map[int]Solver

// Lookup returns the solver for day. It never falls back to another day.
func (d Days) Lookup(day int) (Solver, error) {
	s, ok := d[day]
	if !ok || s == nil {
		return nil, fmt.Errorf("day %d: %w", day, ErrNoSolver)
	}
	return s, nil
}

// Sorted returns the registered days in ascending order.
func (d Days) Sorted() []int {
	days := maps.Keys(d)
	slices.Sort(days)
	return days
}

// Result is the pair of answers for one day.
type Result struct {
	Day   int
	Part1 int
	Part2 int
}

// String formats r the same way samples spell their wanted answers.
func (r Result) String() string {
	return fmt.Sprintf("%d,%d", r.Part1, r.Part2)
}

// Print writes both answers to w, one per line.
func (r Result) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "part 1: %d\npart 2: %d\n", r.Part1, r.Part2)
	return err
}

// Runner loads input for a day and runs its solver.
type Runner struct {
	Days     Days
	Samples  map[int]Sample
	InputDir string
	Logger   *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Solve runs day against its input file under r.InputDir.
func (r *Runner) Solve(day int) (Result, error) {
	solve, err := r.Days.Lookup(day)
	if err != nil {
		return Result{}, err
	}
	path := InputPath(r.InputDir, day)
	r.logger().Info("reading input", zap.Int("day", day), zap.String("path", path))
	lines, err := ReadLines(path)
	if err != nil {
		return Result{}, err
	}
	return r.run(day, solve, lines), nil
}

// SolveSample runs day against its embedded sample and checks the
// answers against the sample's want line.
func (r *Runner) SolveSample(day int) (Result, error) {
	solve, err := r.Days.Lookup(day)
	if err != nil {
		return Result{}, err
	}
	s, ok := r.Samples[day]
	if !ok {
		return Result{}, fmt.Errorf("day %d: %w", day, ErrNoSample)
	}
	lines, err := SplitLines([]byte(s.Input))
	if err != nil {
		return Result{}, fmt.Errorf("day %d sample: %w", day, err)
	}
	res := r.run(day, solve, lines)
	if got := res.String(); got != s.Want {
		return res, fmt.Errorf("day %d sample: got %s; want %s", day, got, s.Want)
	}
	return res, nil
}

func (r *Runner) run(day int, solve Solver, lines []string) Result {
	t0 := time.Now()
	p1, p2 := solve(lines)
	r.logger().Debug("solved",
		zap.Int("day", day),
		zap.Int("lines", len(lines)),
		zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
	return Result{Day: day, Part1: p1, Part2: p2}
}

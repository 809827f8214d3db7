// Package y2021 holds the solvers for Advent of Code 2021.
package y2021

import (
	"embed"

	aoc "github.com/maisem/aoc2021"
)

//go:embed day0?.go
var sources embed.FS

// Solvers returns the dispatch table of every implemented day.
func Solvers() aoc.Days {
	return aoc.Days{
		1: Day01,
		2: Day02,
		3: Day03,
		4: Day04,
		5: Day05,
		6: Day06,
		7: Day07,
		8: Day08,
		9: Day09,
	}
}

// Samples returns the published examples embedded in the solvers' doc
// comments, keyed by day.
func Samples() (map[int]aoc.Sample, error) {
	return aoc.SamplesByDay(sources, "day0?.go")
}

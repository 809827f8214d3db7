package y2021

import (
	"math"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

// cheapestAlignment returns the lowest total cost of moving every crab
// to a common position, where moving n steps costs cost(n).
func cheapestAlignment(crabs []int, cost func(n int) int) int {
	best := math.MaxInt
	for t := slices.Min(crabs); t <= slices.Max(crabs); t++ {
		total := 0
		for _, c := range crabs {
			total += cost(aoc.AbsDiff(c, t))
		}
		best = min(best, total)
	}
	return best
}

/*
want=37,168

16,1,2,0,4,2,7,1,2,14
*/
func Day07(lines []string) (int, int) {
	crabs := aoc.Ints(strings.Split(lines[0], ",")...)
	linear := func(n int) int { return n }
	triangle := func(n int) int { return n * (n + 1) / 2 }
	return cheapestAlignment(crabs, linear), cheapestAlignment(crabs, triangle)
}

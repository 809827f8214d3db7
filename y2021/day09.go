package y2021

import (
	"slices"

	aoc "github.com/maisem/aoc2021"
)

const ridge = 9

func parseHeights(lines []string) aoc.Grid[int] {
	g := make(aoc.Grid[int], len(lines))
	aoc.ForLinesY(lines, func(y int, line string) {
		g[y] = aoc.Digits(line)
	})
	return g
}

// lowPoints returns the points lower than all of their immediate
// neighbors. Cells off the grid count as infinitely high.
func lowPoints(g aoc.Grid[int]) []aoc.Pt {
	var low []aoc.Pt
	g.ForEach(func(p aoc.Pt, h int) {
		if h >= ridge {
			return
		}
		isLow := true
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if nh, ok := g.AtOk(n); ok && nh <= h {
				isLow = false
				return false
			}
			return true
		})
		if isLow {
			low = append(low, p)
		}
	})
	return low
}

/*
want=15,1134

2199943210
3987894921
9856789892
8767896789
9899965678
*/
func Day09(lines []string) (int, int) {
	heights := parseHeights(lines)
	low := lowPoints(heights)

	risk := 0
	for _, p := range low {
		risk += heights.At(p) + 1
	}

	// Basins are the regions walled off by ridges.
	g := heights.ToGraph(false, func(h int) bool { return h == ridge })
	var sizes []int
	for _, p := range low {
		sizes = append(sizes, len(g.ReachableNodes(p)))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	product := 1
	for _, s := range sizes[:min(3, len(sizes))] {
		product *= s
	}
	return risk, product
}

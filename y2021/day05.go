package y2021

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

func parsePt(s string) aoc.Pt {
	x, y, _ := strings.Cut(s, ",")
	return aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)}
}

func parseVent(line string) aoc.Segment {
	a, b, _ := strings.Cut(line, " -> ")
	return aoc.Segment{A: parsePt(a), B: parsePt(b)}
}

// overlaps counts the points covered by at least two of segs.
func overlaps(segs []aoc.Segment) int {
	covered := make(map[aoc.Pt]int)
	n := 0
	for _, s := range segs {
		for _, p := range s.Points() {
			covered[p]++
			if covered[p] == 2 {
				n++
			}
		}
	}
	return n
}

/*
want=5,12

0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
*/
func Day05(lines []string) (int, int) {
	var straight, all []aoc.Segment
	for _, line := range lines {
		s := parseVent(line)
		switch {
		case s.Horizontal() || s.Vertical():
			straight = append(straight, s)
		case !s.Diagonal():
			// Neither straight nor at 45 degrees.
			continue
		}
		all = append(all, s)
	}
	return overlaps(straight), overlaps(all)
}

package y2021

import aoc "github.com/maisem/aoc2021"

/*
want=7,5

199
200
208
210
200
207
240
269
260
263
*/
func Day01(lines []string) (int, int) {
	depths := aoc.Ints(lines...)
	return increases(depths), increases(windowSums(depths, 3))
}

func increases(in []int) int {
	n := 0
	for i := 1; i < len(in); i++ {
		if in[i] > in[i-1] {
			n++
		}
	}
	return n
}

func windowSums(in []int, width int) []int {
	var out []int
	for i := 0; i+width <= len(in); i++ {
		out = append(out, aoc.Sum(in[i:i+width]...))
	}
	return out
}

package y2021

import (
	"slices"

	aoc "github.com/maisem/aoc2021"
)

/*
want=198,230

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func Day03(lines []string) (int, int) {
	width := len(lines[0])
	gamma := make([]byte, width)
	epsilon := make([]byte, width)
	for i := range gamma {
		gamma[i] = mostCommonBit(lines, i)
		epsilon[i] = gamma[i] ^ 1
	}
	p1 := aoc.ParseBinary(string(gamma)) * aoc.ParseBinary(string(epsilon))

	oxygen := rating(lines, true)
	co2 := rating(lines, false)
	return int(p1), oxygen * co2
}

// mostCommonBit returns '1' or '0', whichever is more common in column
// i of rows. Ties go to '1'.
func mostCommonBit(rows []string, i int) byte {
	ones := 0
	for _, r := range rows {
		if r[i] == '1' {
			ones++
		}
	}
	if 2*ones >= len(rows) {
		return '1'
	}
	return '0'
}

// rating filters rows column by column, keeping those whose bit is the
// most common one (or the least common one if !majority) until a single
// row is left. Ties keep '1' for the majority and '0' for the minority.
func rating(rows []string, majority bool) int {
	keep := slices.Clone(rows)
	for i := 0; len(keep) > 1 && i < len(keep[0]); i++ {
		want := mostCommonBit(keep, i)
		if !majority {
			want ^= 1
		}
		if !slices.ContainsFunc(keep, func(r string) bool { return r[i] == want }) {
			continue
		}
		keep = slices.DeleteFunc(keep, func(r string) bool { return r[i] != want })
	}
	return int(aoc.ParseBinary(keep[0]))
}

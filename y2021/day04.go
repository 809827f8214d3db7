package y2021

import (
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type bingoCard struct {
	nums   aoc.Grid[int]
	marked aoc.Grid[bool]
	won    bool
}

func newBingoCard(rows aoc.Grid[int]) *bingoCard {
	size := rows.Size()
	return &bingoCard{
		nums:   rows,
		marked: aoc.MakeGrid[bool](size.X, size.Y),
	}
}

// mark marks n on the card and reports whether the card is now complete.
func (c *bingoCard) mark(n int) bool {
	c.nums.ForEach(func(p aoc.Pt, v int) {
		if v == n {
			c.marked.Set(p, true)
		}
	})
	return anyRowFull(c.marked) || anyRowFull(c.marked.Transpose())
}

func (c *bingoCard) unmarkedSum() int {
	sum := 0
	c.nums.ForEach(func(p aoc.Pt, v int) {
		if !c.marked.At(p) {
			sum += v
		}
	})
	return sum
}

func anyRowFull(g aoc.Grid[bool]) bool {
	for _, row := range g {
		if !slices.Contains(row, false) {
			return true
		}
	}
	return false
}

func parseBingo(lines []string) (calls []int, cards []*bingoCard) {
	calls = aoc.Ints(strings.Split(lines[0], ",")...)
	var cur aoc.Grid[int]
	flush := func() {
		if len(cur) > 0 {
			cards = append(cards, newBingoCard(cur))
			cur = nil
		}
	}
	for _, line := range lines[1:] {
		f := strings.Fields(line)
		if len(f) == 0 {
			flush()
			continue
		}
		cur = append(cur, aoc.Ints(f...))
	}
	flush()
	return calls, cards
}

/*
want=4512,1924

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
8  2 23  4 24
21  9 14 16  7
6 10  3 18  5
1 12 20 15 19

3 15  0  2 22
9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
2  0 12  3  7
*/
func Day04(lines []string) (int, int) {
	calls, cards := parseBingo(lines)
	var scores []int
	for _, n := range calls {
		for _, c := range cards {
			if c.won || !c.mark(n) {
				continue
			}
			c.won = true
			scores = append(scores, c.unmarkedSum()*n)
		}
		if len(scores) == len(cards) {
			break
		}
	}
	if len(scores) == 0 {
		return 0, 0
	}
	return scores[0], scores[len(scores)-1]
}

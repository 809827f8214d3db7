package y2021

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

const (
	newbornTimer = 8
	resetTimer   = 6
)

// school counts lanternfish by days left until they spawn.
type school [newbornTimer + 1]int

func (s *school) tick() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[resetTimer] += spawning
	s[newbornTimer] = spawning
}

func fishAfter(timers []int, days int) int {
	var s school
	for _, t := range timers {
		s[t]++
	}
	for i := 0; i < days; i++ {
		s.tick()
	}
	return aoc.Sum(s[:]...)
}

/*
want=5934,26984457539

3,4,3,1,2
*/
func Day06(lines []string) (int, int) {
	timers := aoc.Ints(strings.Split(lines[0], ",")...)
	return fishAfter(timers, 80), fishAfter(timers, 256)
}

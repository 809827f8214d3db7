package y2021

import (
	"strings"

	aoc "github.com/maisem/aoc2021"
)

type command struct {
	dir string
	n   int
}

type sub struct {
	pos, depth, aim int
}

/*
want=150,900

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func Day02(lines []string) (int, int) {
	var cmds []command
	for _, line := range lines {
		dir, n, _ := strings.Cut(line, " ")
		cmds = append(cmds, command{dir: dir, n: aoc.Int(n)})
	}

	// Unknown directions leave the submarine where it is.
	p1 := aoc.Fold(cmds, func(s sub, c command) sub {
		switch c.dir {
		case "forward":
			s.pos += c.n
		case "down":
			s.depth += c.n
		case "up":
			s.depth -= c.n
		}
		return s
	}, sub{})
	p2 := aoc.Fold(cmds, func(s sub, c command) sub {
		switch c.dir {
		case "forward":
			s.pos += c.n
			s.depth += s.aim * c.n
		case "down":
			s.aim += c.n
		case "up":
			s.aim -= c.n
		}
		return s
	}, sub{})
	return p1.pos * p1.depth, p2.pos * p2.depth
}

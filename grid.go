package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a structural hash of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// ToGraph converts the grid into a graph with a node per cell and an
// edge of weight 1 between neighboring cells. If allowDiagonals is true,
// then diagonal neighbors are included. If disallowed is not nil, it is
// called on each cell, and if it returns true, that cell is not included
// in the graph.
func (grid Grid[T]) ToGraph(allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	skip := func(v T) bool {
		return disallowed != nil && disallowed(v)
	}

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	grid.ForEach(func(p1 Pt, v T) {
		if skip(v) {
			return
		}
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if v2, ok := grid.AtOk(p2); ok && !skip(v2) {
				g.AddEdge(p1, p2, 1)
			}
			return true
		})
	})
	return g
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// Horizontal reports whether s runs along the X axis.
func (s Segment) Horizontal() bool { return s.A.Y == s.B.Y }

// Vertical reports whether s runs along the Y axis.
func (s Segment) Vertical() bool { return s.A.X == s.B.X }

// Diagonal reports whether s is at 45 degrees.
func (s Segment) Diagonal() bool {
	return s.A != s.B && AbsDiff(s.A.X, s.B.X) == AbsDiff(s.A.Y, s.B.Y)
}

// Points returns every point from A to B inclusive. The segment must be
// horizontal, vertical or diagonal; other slopes come out as a bent path.
func (s Segment) Points() []Pt {
	p := s.A
	pts := []Pt{p}
	for p != s.B {
		p = p.Toward(s.B)
		pts = append(pts, p)
	}
	return pts
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

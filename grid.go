package aoc

import (
	"fmt"
	"reflect"
	"sync"

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
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
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

// ParseGrid builds a byte grid from the lines of content. All rows must
// have the same width.
func ParseGrid(content string) (Grid[byte], error) {
	lines := Lines(content)
	g := make(Grid[byte], 0, len(lines))
	for y, line := range lines {
		if y > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("row %d has width %d; want %d", y, len(line), len(g[0]))
		}
		g = append(g, []byte(line))
	}
	return g, nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell, row by row.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Count returns the number of cells for which match returns true.
func (g Grid[T]) Count(match func(T) bool) int {
	n := 0
	g.ForEach(func(_ Pt, v T) {
		if match(v) {
			n++
		}
	})
	return n
}

// CountNeighbors returns how many of the 8 cells around p are in the grid
// and match.
func (g Grid[T]) CountNeighbors(p Pt, match func(T) bool) int {
	n := 0
	p.ForNeighbors(func(q Pt) bool {
		if v, ok := g.AtOk(q); ok && match(v) {
			n++
		}
		return true
	})
	return n
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Stabilize calls step on g until a step leaves the grid unchanged. It
// returns the number of steps that changed the grid.
func (g Grid[T]) Stabilize(step func(Grid[T])) int {
	rounds := 0
	prev := g.Hash()
	for {
		step(g)
		cur := g.Hash()
		if cur == prev {
			return rounds
		}
		prev = cur
		rounds++
	}
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for each of the 8 points around p until f returns
// false.
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

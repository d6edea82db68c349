package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/day04"
)

func (s solver) rolls() aoc.Grid[byte] {
	g := aoc.MustGet(aoc.ParseWhole(s.InputPath(), day04.Parse))
	s.Debugf("grid size %v", g.Size())
	return g
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return day04.Part1(s.rolls())
}

// want=43
func (s solver) D4p2() any {
	return day04.Part2(s.rolls())
}

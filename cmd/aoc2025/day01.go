package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/day01"
)

func (s solver) turns() []day01.Turn {
	return aoc.MustGet(aoc.ParseLinesWith(s.InputPath(), day01.ParseTurn))
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return day01.Part1(s.turns())
}

// want=6
func (s solver) D1p2() any {
	return day01.Part2(s.turns())
}

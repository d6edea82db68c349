package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/day03"
)

func (s solver) banks() []day03.Bank {
	return aoc.MustGet(aoc.ParseLines(s.InputPath(), day03.ParseBank))
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return day03.Part1(s.banks())
}

// want=3121910778619
func (s solver) D3p2() any {
	return day03.Part2(s.banks())
}

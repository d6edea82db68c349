package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/day02"
)

func (s solver) ranges() []day02.Range {
	return aoc.MustGet(aoc.ParseWhole(s.InputPath(), day02.Parse))
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return day02.Part1(s.ranges())
}

// want=4174379265
func (s solver) D2p2() any {
	return day02.Part2(s.ranges())
}

// Package day04 finds the rolls of paper ('@') a forklift can reach: those
// with fewer than four rolls among their eight neighbours.
package day04

import "github.com/maisem/aoc2025"

const (
	roll  = '@'
	empty = '.'

	maxNeighbors = 4
)

func isRoll(b byte) bool { return b == roll }

// Parse parses the grid of rolls.
func Parse(content string) (aoc.Grid[byte], error) {
	return aoc.ParseGrid(content)
}

// Accessible returns the rolls that have fewer than four neighbouring rolls.
func Accessible(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if isRoll(v) && g.CountNeighbors(p, isRoll) < maxNeighbors {
			out = append(out, p)
		}
	})
	return out
}

// Part1 counts the accessible rolls.
func Part1(g aoc.Grid[byte]) int {
	return len(Accessible(g))
}

// Part2 removes all accessible rolls, round after round, until none are
// left to remove, and returns how many were removed. g is modified.
func Part2(g aoc.Grid[byte]) int {
	before := g.Count(isRoll)
	g.Stabilize(func(g aoc.Grid[byte]) {
		for _, p := range Accessible(g) {
			g.Set(p, empty)
		}
	})
	return before - g.Count(isRoll)
}

// Package day01 solves the dial puzzle: a dial with 100 positions starting
// at 50 is turned left and right, and we count how often it points at 0.
package day01

import (
	"fmt"
	"strconv"

	"github.com/maisem/aoc2025"
)

const (
	dialSize = 100
	start    = 50
)

// Turn is a rotation of the dial. Clicks is positive for right turns and
// negative for left turns.
type Turn struct {
	Clicks int
}

// TurnError describes a line that isn't a valid turn.
type TurnError struct {
	Line   string
	Reason string
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("bad turn %q: %s", e.Line, e.Reason)
}

// ParseTurn parses a turn like "R5" or "L30".
func ParseTurn(line string) (Turn, error) {
	if line == "" {
		return Turn{}, &TurnError{Line: line, Reason: "empty line"}
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil || n < 0 {
		return Turn{}, &TurnError{Line: line, Reason: "bad rotation amount"}
	}
	switch line[0] {
	case 'R':
		return Turn{Clicks: n}, nil
	case 'L':
		return Turn{Clicks: -n}, nil
	}
	return Turn{}, &TurnError{Line: line, Reason: "direction must be R or L"}
}

// Part1 counts the turns that leave the dial at 0.
func Part1(turns []Turn) int {
	pos, count := start, 0
	for _, t := range turns {
		pos = aoc.Mod(pos+t.Clicks, dialSize)
		if pos == 0 {
			count++
		}
	}
	return count
}

// Part2 counts every click that leaves the dial at 0, including the ones in
// the middle of a turn.
func Part2(turns []Turn) int {
	pos, count := start, 0
	for _, t := range turns {
		count += zeroClicks(pos, t.Clicks)
		pos = aoc.Mod(pos+t.Clicks, dialSize)
	}
	return count
}

// zeroClicks returns how many of the clicks of a turn from pos land on 0.
// pos is in [0, dialSize).
func zeroClicks(pos, clicks int) int {
	if clicks >= 0 {
		return (pos + clicks) / dialSize
	}
	n := -clicks
	if pos == 0 {
		return n / dialSize
	}
	if n < pos {
		return 0
	}
	return (n-pos)/dialSize + 1
}

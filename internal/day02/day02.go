// Package day02 sums the invalid product IDs in a list of ranges. An ID is
// invalid when its digits are some sequence repeated.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2025"
)

// Range is an inclusive range of IDs.
type Range struct {
	Start, End int
}

// ParseRange parses "start-end".
func ParseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || strings.Contains(b, "-") {
		return Range{}, fmt.Errorf("invalid range %q, want start-end", s)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start in %q: %w", s, err)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end in %q: %w", s, err)
	}
	return Range{Start: start, End: end}, nil
}

// Parse parses the comma separated ranges in content.
func Parse(content string) ([]Range, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}
	var out []Range
	for _, s := range strings.Split(content, ",") {
		r, err := ParseRange(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func sumMatching(ranges []Range, match func(int) bool) int {
	sum := 0
	for _, r := range ranges {
		for n := r.Start; n <= r.End; n++ {
			if match(n) {
				sum += n
			}
		}
	}
	return sum
}

// Part1 sums the IDs made of some digits repeated twice.
func Part1(ranges []Range) int {
	return sumMatching(ranges, MirrorHalves)
}

// Part2 sums the IDs made of some digits repeated at least twice.
func Part2(ranges []Range) int {
	return sumMatching(ranges, Repeating)
}

// MirrorHalves reports whether n has an even number of digits and both
// halves are equal, like 6464.
func MirrorHalves(n int) bool {
	d := aoc.NumDigits(n)
	if d%2 != 0 {
		return false
	}
	div := aoc.Pow10(d / 2)
	return n/div == n%div
}

// Repeating reports whether the digits of n are one chunk repeated two or
// more times, like 121212 or 777.
func Repeating(n int) bool {
	d := aoc.NumDigits(n)
	for size := 1; size <= d/2; size++ {
		if d%size != 0 {
			continue
		}
		div := aoc.Pow10(size)
		chunk := n % div
		rest := n / div
		for rest > 0 && rest%div == chunk {
			rest /= div
		}
		if rest == 0 {
			return true
		}
	}
	return false
}

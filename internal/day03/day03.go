// Package day03 picks batteries from banks of digits to get the largest
// joltage.
package day03

import "github.com/maisem/aoc2025"

// Bank is a row of battery joltages, one digit each.
type Bank []int

// ParseBank parses a line of digits.
func ParseBank(line string) (Bank, error) {
	return aoc.Digits(line)
}

// Part1 sums the largest two-battery joltage of each bank.
func Part1(banks []Bank) int {
	sum := 0
	for _, b := range banks {
		sum += LargestPair(b)
	}
	return sum
}

// Part2 sums the largest twelve-battery joltage of each bank.
func Part2(banks []Bank) int {
	sum := 0
	for _, b := range banks {
		sum += Largest(b, 12)
	}
	return sum
}

// LargestPair returns the largest two digit number formed by two digits of
// b in order, or 0 if b has fewer than two digits.
func LargestPair(b Bank) int {
	if len(b) < 2 {
		return 0
	}
	best, first := 0, b[0]
	for _, d := range b[1:] {
		best = max(best, first*10+d)
		first = max(first, d)
	}
	return best
}

// Largest returns the largest k digit number formed by k digits of b in
// order. It returns 0 if k is 0 or larger than the bank.
func Largest(b Bank, k int) int {
	if k == 0 || k > len(b) {
		return 0
	}
	n, start := 0, 0
	for pos := range k {
		// Leave room for the k-pos-1 digits still to pick.
		end := len(b) - (k - pos - 1)
		best := start
		for i := start + 1; i < end; i++ {
			if b[i] > b[best] {
				best = i
			}
		}
		n = n*10 + b[best]
		start = best + 1
	}
	return n
}

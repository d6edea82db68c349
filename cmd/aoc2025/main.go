// Command aoc2025 runs the Advent of Code 2025 solutions.
package main

import (
	"embed"

	"github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

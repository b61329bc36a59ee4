// Command y2023 solves the 2023 Advent of Code puzzles.
package main

import (
	"embed"

	"github.com/aocgo/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

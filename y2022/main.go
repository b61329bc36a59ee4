// Command y2022 solves the 2022 Advent of Code puzzles.
package main

import (
	"embed"

	"github.com/aocgo/aoc"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

package main

import (
	"github.com/aocgo/aoc"
)

// reflectionRow returns the number of rows above a horizontal line of
// reflection in g at which exactly smudges cells differ, or 0.
func reflectionRow(g aoc.Grid[byte], smudges int) int {
	for y := 1; y < len(g); y++ {
		diff := 0
		for a, b := y-1, y; a >= 0 && b < len(g) && diff <= smudges; a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return y
		}
	}
	return 0
}

func (s solver) summarizeMirrors(smudges int) int {
	sum := 0
	for _, b := range s.Blocks() {
		g := aoc.Grid[byte](aoc.Map(b, func(line string) []byte { return []byte(line) }))
		if y := reflectionRow(g, smudges); y > 0 {
			sum += 100 * y
			continue
		}
		sum += reflectionRow(g.Transpose(), smudges)
	}
	return sum
}

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s solver) D13p1() any {
	return s.summarizeMirrors(0)
}

// want=400
func (s solver) D13p2() any {
	return s.summarizeMirrors(1)
}

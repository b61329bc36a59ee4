package main

import (
	"github.com/aocgo/aoc"
	"tailscale.com/util/deephash"
)

// tiltNorth rolls every round rock as far north as it goes.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// northLoad returns the total load on the north support beams.
func northLoad(g aoc.Grid[byte]) int {
	load := 0
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == 'O' {
			load += len(g) - p.Y
		}
	})
	return load
}

// spin tilts the platform north, west, south and then east. Rotating
// clockwise after each tilt brings the next edge to the north.
func spin(g aoc.Grid[byte]) aoc.Grid[byte] {
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := s.Grid()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const cycles = 1_000_000_000
	g := s.Grid()
	seen := map[deephash.Sum]int{}
	for i := 0; i < cycles; i++ {
		h := g.Hash()
		if start, ok := seen[h]; ok {
			period := i - start
			for left := (cycles - i) % period; left > 0; left-- {
				g = spin(g)
			}
			break
		}
		seen[h] = i
		g = spin(g)
	}
	return northLoad(g)
}

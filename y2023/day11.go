package main

import (
	"github.com/aocgo/aoc"
)

// galaxyDistances returns the sum of the distances between every pair of
// galaxies after each empty row and column grows to factor copies.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	size := g.Size()
	rowGalaxies := make([]int, size.Y)
	colGalaxies := make([]int, size.X)
	var galaxies []aoc.Pt
	g.ForEach(func(p aoc.Pt, v byte) {
		if v == '#' {
			galaxies = append(galaxies, p)
			rowGalaxies[p.Y]++
			colGalaxies[p.X]++
		}
	})
	// expand returns where each index lands after growing empty ones.
	expand := func(counts []int) []int {
		out := make([]int, len(counts))
		at := 0
		for i, n := range counts {
			out[i] = at
			if n == 0 {
				at += factor
			} else {
				at++
			}
		}
		return out
	}
	xs, ys := expand(colGalaxies), expand(rowGalaxies)
	for i, p := range galaxies {
		galaxies[i] = aoc.Pt{X: xs[p.X], Y: ys[p.Y]}
	}

	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), 2)
}

// want=82000210
func (s solver) D11p2() any {
	return galaxyDistances(s.Grid(), 1_000_000)
}

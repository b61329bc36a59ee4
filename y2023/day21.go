package main

import (
	"github.com/aocgo/aoc"
)

// reachablePlots returns, for each step count in steps, how many garden
// plots can be the last stop of a walk of exactly that many steps from S.
// The map repeats infinitely in every direction.
func reachablePlots(g aoc.Grid[byte], steps ...int) []int {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		aoc.Logger().Fatal("no start")
	}
	size := g.Size()
	limit := 0
	for _, n := range steps {
		limit = max(limit, n)
	}

	dist := map[aoc.Pt]int{start: 0}
	frontier := []aoc.Pt{start}
	for d := 1; d <= limit && len(frontier) > 0; d++ {
		var next []aoc.Pt
		for _, p := range frontier {
			p.ForImmediateNeighbors(func(n aoc.Pt) bool {
				if _, seen := dist[n]; seen || g.At(aoc.StandardizePt(n, size)) == '#' {
					return true
				}
				dist[n] = d
				next = append(next, n)
				return true
			})
		}
		frontier = next
	}

	// A plot reached in d steps is reachable again every two steps after.
	out := make([]int, len(steps))
	for _, d := range dist {
		for i, n := range steps {
			if d <= n && d%2 == n%2 {
				out[i]++
			}
		}
	}
	return out
}

func (s solver) gardenSteps(sample, real int) int {
	if s.SampleMode {
		return sample
	}
	return real
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	return reachablePlots(s.Grid(), s.gardenSteps(6, 64))[0]
}

// extrapolatePlots returns reachablePlots(g, steps) for a square map whose
// start row and column are clear. The count then grows quadratically with
// every map width walked past the edge of the first map, so it is fitted
// from three short walks.
func extrapolatePlots(g aoc.Grid[byte], steps int) int {
	width := g.Size().X
	edge := steps % width
	f := reachablePlots(g, edge, edge+width, edge+2*width)
	x := steps / width
	return f[0] + x*(f[1]-f[0]) + x*(x-1)/2*(f[2]-2*f[1]+f[0])
}

// want=6536
func (s solver) D21p2() any {
	g := s.Grid()
	if s.SampleMode {
		return reachablePlots(g, 100)[0]
	}
	return extrapolatePlots(g, 26501365)
}

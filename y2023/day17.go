package main

import (
	"math"

	"github.com/aocgo/aoc"
)

// crucible is a position on the city map along with the direction of the
// last move that reached it.
type crucible struct {
	Pt  aoc.Pt
	Dir aoc.Direction
}

// crucibleGraph returns the graph of moves on the heat loss map. Every
// move turns 90° and then runs straight for between minRun and maxRun
// blocks; its weight is the heat lost in the blocks entered.
func crucibleGraph(g aoc.Grid[int], minRun, maxRun int) *aoc.Graph[crucible] {
	var out aoc.Graph[crucible]
	g.ForEach(func(p aoc.Pt, _ int) {
		for _, d := range aoc.Directions {
			from := crucible{p, d}
			out.AddNode(from)
			for _, nd := range []aoc.Direction{d.Turn(true), d.Turn(false)} {
				cost := 0
				for n := 1; n <= maxRun; n++ {
					np := p.Move(nd, n)
					v, ok := g.AtOk(np)
					if !ok {
						break
					}
					cost += v
					if n >= minRun {
						out.AddDirectedEdge(from, crucible{np, nd}, cost)
					}
				}
			}
		}
	})
	return &out
}

// leastHeatLoss returns the least heat lost getting a crucible from the top
// left block to the bottom right one.
func leastHeatLoss(g aoc.Grid[int], minRun, maxRun int) int {
	graph := crucibleGraph(g, minRun, maxRun)
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}

	// Facing Up means the first move is horizontal, facing Left vertical.
	starts := []crucible{{aoc.Pt{}, aoc.Up}, {aoc.Pt{}, aoc.Left}}
	goals := []crucible{{end, aoc.Down}, {end, aoc.Right}}

	best := math.MaxInt
	for _, start := range starts {
		dist := graph.ShortestPaths(start)
		for _, goal := range goals {
			if d, ok := dist[goal]; ok {
				best = min(best, d)
			}
		}
	}
	if best == math.MaxInt {
		aoc.Logger().Fatalf("no path to %v", end)
	}
	return best
}

func (s solver) heatMap() aoc.Grid[int] {
	return aoc.MapGrid(s.Grid(), func(b byte) int {
		return aoc.Digit(rune(b))
	})
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return leastHeatLoss(s.heatMap(), 1, 3)
}

/*
want=94
*/
/*
want=71

111111111111
999999999991
999999999991
999999999991
999999999991
*/
func (s solver) D17p2() any {
	return leastHeatLoss(s.heatMap(), 4, 10)
}

package main

import (
	"github.com/aocgo/aoc"
)

// trailMap is the hiking map with its start and end.
type trailMap struct {
	grid       aoc.Grid[byte]
	start, end aoc.Pt
}

func newTrailMap(g aoc.Grid[byte]) trailMap {
	size := g.Size()
	return trailMap{
		grid:  g,
		start: aoc.Pt{X: 1, Y: 0},
		end:   aoc.Pt{X: size.X - 2, Y: size.Y - 1},
	}
}

func (m trailMap) open(p aoc.Pt) bool {
	v, ok := m.grid.AtOk(p)
	return ok && v != '#'
}

// moves returns the directions a hiker standing on p may take. On a slope
// with slippery set, that is only downhill.
func (m trailMap) moves(p aoc.Pt, slippery bool) []aoc.Direction {
	if slippery {
		if d, ok := aoc.ParseDirection(m.grid.At(p)); ok {
			return []aoc.Direction{d}
		}
	}
	return aoc.Directions[:]
}

// isJunction reports whether p is the start, the end or a path cell with
// at least three open neighbours.
func (m trailMap) isJunction(p aoc.Pt) bool {
	if p == m.start || p == m.end {
		return true
	}
	if !m.open(p) {
		return false
	}
	n := 0
	for _, d := range aoc.Directions {
		if m.open(p.Move(d, 1)) {
			n++
		}
	}
	return n >= 3
}

// junctionGraph compresses the map into a directed graph between
// junctions, weighted by the length of the trail walked.
func (m trailMap) junctionGraph(slippery bool) *aoc.Graph[aoc.Pt] {
	var g aoc.Graph[aoc.Pt]
	m.grid.ForEach(func(p aoc.Pt, _ byte) {
		if !m.isJunction(p) {
			return
		}
		g.AddNode(p)
		for _, d := range m.moves(p, slippery) {
			prev, cur := p, p.Move(d, 1)
			if !m.open(cur) {
				continue
			}
			for steps := 1; ; steps++ {
				if m.isJunction(cur) {
					g.AddDirectedEdge(p, cur, steps)
					break
				}
				next, ok := m.step(prev, cur, slippery)
				if !ok {
					break // dead end
				}
				prev, cur = cur, next
			}
		}
	})
	return &g
}

// step returns the corridor cell after cur when arriving from prev.
func (m trailMap) step(prev, cur aoc.Pt, slippery bool) (aoc.Pt, bool) {
	for _, d := range m.moves(cur, slippery) {
		next := cur.Move(d, 1)
		if next != prev && m.open(next) {
			return next, true
		}
	}
	return aoc.Pt{}, false
}

func (m trailMap) longestHike(slippery bool) int {
	n, ok := m.junctionGraph(slippery).LongestPath(m.start, m.end)
	if !ok {
		aoc.Logger().Fatalf("no hike from %v to %v", m.start, m.end)
	}
	return n
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) D23p1() any {
	return newTrailMap(s.Grid()).longestHike(true)
}

// want=154
func (s solver) D23p2() any {
	return newTrailMap(s.Grid()).longestHike(false)
}

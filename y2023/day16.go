package main

import (
	"slices"

	"github.com/aocgo/aoc"
)

// deflect returns the directions a beam travelling in d leaves tile in.
func deflect(tile byte, d aoc.Direction) []aoc.Direction {
	switch tile {
	case '/':
		// Right and Up swap, as do Left and Down.
		return []aoc.Direction{[...]aoc.Direction{aoc.Right, aoc.Up, aoc.Left, aoc.Down}[d]}
	case '\\':
		return []aoc.Direction{[...]aoc.Direction{aoc.Left, aoc.Down, aoc.Right, aoc.Up}[d]}
	case '|':
		if !d.Vertical() {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if d.Vertical() {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized returns the number of tiles a beam entering at start passes
// through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := aoc.SetOf(start)
	tiles := aoc.SetOf(start.Pt)
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Path) bool {
		for _, d := range deflect(g.At(p.Pt), p.Dir) {
			next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d})
			if !ok || seen.Has(next) {
				continue
			}
			seen.Add(next)
			tiles.Add(next.Pt)
			q.Push(next)
		}
		return true
	})
	return len(tiles)
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.Grid(), aoc.Path{Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.Grid()
	return slices.Max(aoc.Parallel(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}))
}

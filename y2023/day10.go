package main

import (
	"github.com/aocgo/aoc"
)

// pipes maps each pipe to the two directions it connects.
var pipes = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

func connects(pipe byte, d aoc.Direction) bool {
	ds, ok := pipes[pipe]
	return ok && (ds[0] == d || ds[1] == d)
}

// pipeLoop returns the cells of the loop through S in walking order,
// starting and ending at S.
func pipeLoop(g aoc.Grid[byte]) []aoc.Pt {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		aoc.Logger().Fatal("no start tile")
	}
	dir, found := aoc.Up, false
	for _, d := range aoc.Directions {
		if v, ok := g.AtOk(start.Move(d, 1)); ok && connects(v, d.Reverse()) {
			dir, found = d, true
			break
		}
	}
	if !found {
		aoc.Logger().Fatalf("no pipe connects to %v", start)
	}

	loop := []aoc.Pt{start}
	cur := start.Move(dir, 1)
	for cur != start {
		loop = append(loop, cur)
		ds := pipes[g.At(cur)]
		if ds[0] == dir.Reverse() {
			dir = ds[1]
		} else {
			dir = ds[0]
		}
		cur = cur.Move(dir, 1)
	}
	return append(loop, start)
}

/*
want=4

.....
.S-7.
.|.|.
.L-J.
.....
*/
/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	return (len(pipeLoop(s.Grid())) - 1) / 2
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
/*
want=8

.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
*/
/*
want=10

FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
*/
func (s solver) D10p2() any {
	return aoc.PolygonInteriorPoints(pipeLoop(s.Grid()))
}

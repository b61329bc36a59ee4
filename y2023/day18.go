package main

import (
	"strconv"
	"strings"

	"github.com/aocgo/aoc"
)

type digStep struct {
	Dir aoc.Direction
	N   int
}

// parseDigStep reads a dig plan line. With fromColour set, the distance
// and direction come from the hex code instead.
func parseDigStep(line string, fromColour bool) digStep {
	f := strings.Fields(line)
	if len(f) != 3 {
		aoc.Logger().Fatalf("bad dig step %q", line)
	}
	if !fromColour {
		d, ok := aoc.ParseDirection(f[0][0])
		if !ok {
			aoc.Logger().Fatalf("bad direction in %q", line)
		}
		return digStep{Dir: d, N: aoc.Int(f[1])}
	}
	hex := strings.Trim(f[2], "(#)")
	n := aoc.MustGet(strconv.ParseInt(hex[:5], 16, 64))
	d := [...]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}[hex[5]-'0']
	return digStep{Dir: d, N: int(n)}
}

// lagoonSize returns how many cubic metres the lagoon holds, trench
// included.
func (s solver) lagoonSize(fromColour bool) int {
	cur := aoc.Pt{}
	corners := []aoc.Pt{cur}
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		st := parseDigStep(line, fromColour)
		cur = cur.Move(st.Dir, st.N)
		corners = append(corners, cur)
	})
	if cur != corners[0] {
		aoc.Logger().Fatalf("dig plan ends at %v, not back at the start", cur)
	}
	return aoc.PolygonBoundedPoints(corners)
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	return s.lagoonSize(false)
}

// want=952408144115
func (s solver) D18p2() any {
	return s.lagoonSize(true)
}

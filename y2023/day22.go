package main

import (
	"slices"
	"strings"

	"github.com/aocgo/aoc"
)

type brick struct {
	Lo, Hi aoc.Pt3Int
}

func parseBrick(line string) brick {
	a, b := aoc.Cut(line, "~")
	pt := func(s string) aoc.Pt3Int {
		v := aoc.Ints(strings.Split(s, ",")...)
		if len(v) != 3 {
			aoc.Logger().Fatalf("bad brick corner %q", s)
		}
		return aoc.Pt3Int{X: v[0], Y: v[1], Z: v[2]}
	}
	lo, hi := pt(a), pt(b)
	return brick{
		Lo: aoc.Pt3Int{X: min(lo.X, hi.X), Y: min(lo.Y, hi.Y), Z: min(lo.Z, hi.Z)},
		Hi: aoc.Pt3Int{X: max(lo.X, hi.X), Y: max(lo.Y, hi.Y), Z: max(lo.Z, hi.Z)},
	}
}

// parseBricks returns the bricks sorted by their lowest z.
func parseBricks(lines []string) []brick {
	var bs []brick
	for _, line := range lines {
		if line != "" {
			bs = append(bs, parseBrick(line))
		}
	}
	slices.SortStableFunc(bs, func(a, b brick) int {
		return a.Lo.Z - b.Lo.Z
	})
	return bs
}

// column is the top of the settled pile at one (x, y).
type column struct {
	top   int
	owner int // brick index, -1 for the ground
}

// settle drops the bricks, which must be sorted by lowest z, and returns
// for every brick the indices of the bricks it rests on.
func settle(bs []brick) (supporters [][]int) {
	var size aoc.Pt
	for _, b := range bs {
		size.X = max(size.X, b.Hi.X+1)
		size.Y = max(size.Y, b.Hi.Y+1)
	}
	heights := aoc.MakeGrid[column](size.X, size.Y)
	heights.ForEach(func(p aoc.Pt, _ column) {
		heights.Set(p, column{owner: -1})
	})

	supporters = make([][]int, len(bs))
	for i, b := range bs {
		floor := 0
		for x := b.Lo.X; x <= b.Hi.X; x++ {
			for y := b.Lo.Y; y <= b.Hi.Y; y++ {
				floor = max(floor, heights[y][x].top)
			}
		}
		for x := b.Lo.X; x <= b.Hi.X; x++ {
			for y := b.Lo.Y; y <= b.Hi.Y; y++ {
				c := heights[y][x]
				if c.top == floor && c.owner != -1 && !slices.Contains(supporters[i], c.owner) {
					supporters[i] = append(supporters[i], c.owner)
				}
			}
		}
		top := floor + b.Hi.Z - b.Lo.Z + 1
		for x := b.Lo.X; x <= b.Hi.X; x++ {
			for y := b.Lo.Y; y <= b.Hi.Y; y++ {
				heights[y][x] = column{top: top, owner: i}
			}
		}
	}
	return supporters
}

// dependants inverts the supporters relation.
func dependants(supporters [][]int) [][]int {
	out := make([][]int, len(supporters))
	for i, sup := range supporters {
		for _, j := range sup {
			out[j] = append(out[j], i)
		}
	}
	return out
}

// chainReaction returns how many other bricks fall when brick i is
// removed.
func chainReaction(i int, supporters, deps [][]int) int {
	fallen := make([]bool, len(supporters))
	fallen[i] = true
	q := aoc.NewQueue(i)
	count := 0
	q.While(func(b int) bool {
		for _, d := range deps[b] {
			if fallen[d] {
				continue
			}
			if slices.ContainsFunc(supporters[d], func(s int) bool { return !fallen[s] }) {
				continue
			}
			fallen[d] = true
			count++
			q.Push(d)
		}
		return true
	})
	return count
}

/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() any {
	supporters := settle(parseBricks(s.Lines()))
	deps := dependants(supporters)
	safe := 0
	for i := range supporters {
		if !slices.ContainsFunc(deps[i], func(d int) bool { return len(supporters[d]) == 1 }) {
			safe++
		}
	}
	return safe
}

// want=7
func (s solver) D22p2() any {
	supporters := settle(parseBricks(s.Lines()))
	deps := dependants(supporters)
	total := 0
	for i := range supporters {
		total += chainReaction(i, supporters, deps)
	}
	return total
}

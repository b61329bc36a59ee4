package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

type hailstone struct {
	Pos, Vel aoc.Pt3Int
}

func parseHailstone(line string) hailstone {
	v := aoc.Fields(strings.ReplaceAll(line, "@", ","), ",")
	if len(v) != 6 {
		aoc.Logger().Fatalf("bad hailstone %q", line)
	}
	return hailstone{
		Pos: aoc.Pt3Int{X: v[0], Y: v[1], Z: v[2]},
		Vel: aoc.Pt3Int{X: v[3], Y: v[4], Z: v[5]},
	}
}

func (s solver) hailstones() []hailstone {
	var hs []hailstone
	s.ForLines(func(line string) {
		if line != "" {
			hs = append(hs, parseHailstone(line))
		}
	})
	return hs
}

// crossXY returns where the future paths of a and b cross, ignoring Z.
func crossXY(a, b hailstone) (x, y float64, ok bool) {
	det := float64(b.Vel.X*a.Vel.Y - a.Vel.X*b.Vel.Y)
	if det == 0 {
		return 0, 0, false
	}
	dx := float64(b.Pos.X - a.Pos.X)
	dy := float64(b.Pos.Y - a.Pos.Y)
	t := (float64(b.Vel.X)*dy - float64(b.Vel.Y)*dx) / det
	u := (float64(a.Vel.X)*dy - float64(a.Vel.Y)*dx) / det
	if t < 0 || u < 0 {
		return 0, 0, false
	}
	return float64(a.Pos.X) + t*float64(a.Vel.X), float64(a.Pos.Y) + t*float64(a.Vel.Y), true
}

func sub(a, b aoc.Pt3Int) aoc.Pt3Int {
	return aoc.Pt3Int{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// rockStart returns where a rock thrown with velocity v must start to hit
// every hailstone, if there is such a place.
func rockStart(hs []hailstone, v aoc.Pt3Int) (aoc.Pt3Int, bool) {
	// Relative to the rock, every hailstone passes through its start.
	a, b := sub(hs[0].Vel, v), sub(hs[1].Vel, v)
	det := b.X*a.Y - a.X*b.Y
	if det == 0 {
		return aoc.Pt3Int{}, false
	}
	dx, dy := hs[1].Pos.X-hs[0].Pos.X, hs[1].Pos.Y-hs[0].Pos.Y
	num := b.X*dy - b.Y*dx
	if num%det != 0 {
		return aoc.Pt3Int{}, false
	}
	t := num / det
	if t < 0 {
		return aoc.Pt3Int{}, false
	}
	p := aoc.Pt3Int{
		X: hs[0].Pos.X + t*a.X,
		Y: hs[0].Pos.Y + t*a.Y,
		Z: hs[0].Pos.Z + t*a.Z,
	}
	for _, h := range hs {
		if !hitsAt(sub(p, h.Pos), sub(h.Vel, v)) {
			return aoc.Pt3Int{}, false
		}
	}
	return p, true
}

// hitsAt reports whether a hailstone offset by d from the rock start and
// moving with relative velocity vel reaches it at a whole, non-negative
// time.
func hitsAt(d, vel aoc.Pt3Int) bool {
	t := -1
	for _, c := range [][2]int{{d.X, vel.X}, {d.Y, vel.Y}, {d.Z, vel.Z}} {
		off, v := c[0], c[1]
		if v == 0 {
			if off != 0 {
				return false
			}
			continue
		}
		if off%v != 0 || off/v < 0 {
			return false
		}
		if t != -1 && off/v != t {
			return false
		}
		t = off / v
	}
	return true
}

/*
want=2

19, 13, 30 @ -2,  1, -2
18, 19, 22 @ -1, -1, -2
20, 25, 34 @ -2, -2, -4
12, 31, 28 @ -1, -2, -1
20, 19, 15 @  1, -5, -3
*/
func (s solver) D24p1() any {
	lo, hi := 200000000000000.0, 400000000000000.0
	if s.SampleMode {
		lo, hi = 7, 27
	}
	hs := s.hailstones()
	n := 0
	for i, a := range hs {
		for _, b := range hs[i+1:] {
			if x, y, ok := crossXY(a, b); ok && x >= lo && x <= hi && y >= lo && y <= hi {
				n++
			}
		}
	}
	return n
}

// want=47
func (s solver) D24p2() any {
	const maxSpeed = 1000
	hs := s.hailstones()
	for r := 0; r <= maxSpeed; r++ {
		// Only velocities with a component of size r are new at this r.
		for x := -r; x <= r; x++ {
			for y := -r; y <= r; y++ {
				zs := []int{-r, r}
				if aoc.AbsDiff(x, 0) == r || aoc.AbsDiff(y, 0) == r {
					zs = zs[:0]
					for z := -r; z <= r; z++ {
						zs = append(zs, z)
					}
				}
				if r == 0 {
					zs = []int{0}
				}
				for _, z := range zs {
					if p, ok := rockStart(hs, aoc.Pt3Int{X: x, Y: y, Z: z}); ok {
						return p.X + p.Y + p.Z
					}
				}
			}
		}
	}
	aoc.Logger().Fatalf("no rock velocity up to %d", maxSpeed)
	return nil
}

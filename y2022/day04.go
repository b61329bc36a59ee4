package main

import (
	"github.com/aocgo/aoc"
)

type sections struct {
	Lo, Hi int
}

func (a sections) contains(b sections) bool {
	return a.Lo <= b.Lo && b.Hi <= a.Hi
}

func (a sections) overlaps(b sections) bool {
	return a.Lo <= b.Hi && b.Lo <= a.Hi
}

func (s solver) countPairs(f func(a, b sections) bool) int {
	n := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		l, r := aoc.Cut(line, ",")
		a, b := parseSections(l), parseSections(r)
		if f(a, b) {
			n++
		}
	})
	return n
}

func parseSections(s string) sections {
	lo, hi := aoc.Cut(s, "-")
	return sections{aoc.Int(lo), aoc.Int(hi)}
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	return s.countPairs(func(a, b sections) bool {
		return a.contains(b) || b.contains(a)
	})
}

// want=4
func (s solver) D4p2() any {
	return s.countPairs(sections.overlaps)
}

package main

import (
	"github.com/aocgo/aoc"
)

func (s solver) histories() [][]int {
	var out [][]int
	s.ForLines(func(line string) {
		if line != "" {
			out = append(out, aoc.Fields(line, ""))
		}
	})
	return out
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return aoc.Sum(aoc.Map(s.histories(), func(h []int) int {
		return aoc.Extrapolate(h, true)
	})...)
}

// want=2
func (s solver) D9p2() any {
	return aoc.Sum(aoc.Map(s.histories(), func(h []int) int {
		return aoc.Extrapolate(h, false)
	})...)
}

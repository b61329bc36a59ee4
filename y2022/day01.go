package main

import (
	"slices"

	"github.com/aocgo/aoc"
)

// calories returns the total carried by each elf, largest first.
func (s solver) calories() []int {
	totals := aoc.Map(s.Blocks(), func(b []string) int {
		return aoc.Sum(aoc.Ints(b...)...)
	})
	slices.Sort(totals)
	slices.Reverse(totals)
	return totals
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	return s.calories()[0]
}

// want=45000
func (s solver) D1p2() any {
	return aoc.Sum(s.calories()[:3]...)
}

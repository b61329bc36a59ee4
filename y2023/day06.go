package main

import (
	"math"
	"strings"

	"github.com/aocgo/aoc"
)

// waysToWin returns how many button hold times beat record in a race of
// the given time. Holding for h travels h*(time-h).
func waysToWin(time, record int) int {
	hi, lo := aoc.SolveQuad(1, -time, record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	return max(0, last-first+1)
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	_, t := aoc.Cut(lines[0], ":")
	_, d := aoc.Cut(lines[1], ":")
	times, records := aoc.Fields(t, ""), aoc.Fields(d, "")
	ways := 1
	for i := range times {
		ways *= waysToWin(times[i], records[i])
	}
	return ways
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	join := func(line string) int {
		_, v := aoc.Cut(line, ":")
		return aoc.Int(strings.ReplaceAll(v, " ", ""))
	}
	return waysToWin(join(lines[0]), join(lines[1]))
}

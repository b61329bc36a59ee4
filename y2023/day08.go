package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

type desertMap struct {
	Turns string
	Nodes map[string][2]string
}

func (s solver) desertMap() desertMap {
	blocks := s.Blocks()
	m := desertMap{
		Turns: blocks[0][0],
		Nodes: map[string][2]string{},
	}
	for _, line := range blocks[1] {
		name, next := aoc.Cut(line, " = ")
		l, r := aoc.Cut(strings.Trim(next, "()"), ", ")
		m.Nodes[name] = [2]string{l, r}
	}
	return m
}

// steps returns how many steps it takes to walk from start to a node for
// which done reports true.
func (m desertMap) steps(start string, done func(string) bool) int {
	cur := start
	n := 0
	for !done(cur) {
		next, ok := m.Nodes[cur]
		if !ok {
			aoc.Logger().Fatalf("unknown node %q", cur)
		}
		if m.Turns[n%len(m.Turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
		n++
	}
	return n
}

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	return s.desertMap().steps("AAA", func(n string) bool { return n == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	m := s.desertMap()
	var cycles []int
	for name := range m.Nodes {
		if strings.HasSuffix(name, "A") {
			cycles = append(cycles, m.steps(name, func(n string) bool {
				return strings.HasSuffix(n, "Z")
			}))
		}
	}
	return aoc.LCM(cycles...)
}

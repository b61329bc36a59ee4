package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aocgo/aoc"
)

// stacks holds the crates of each stack, bottom first.
type stacks [][]byte

func parseStacks(drawing []string) stacks {
	labels := drawing[len(drawing)-1]
	n := len(strings.Fields(labels))
	st := make(stacks, n)
	for i := len(drawing) - 2; i >= 0; i-- {
		row := drawing[i]
		for j := 0; j < n; j++ {
			if x := 4*j + 1; x < len(row) && row[x] != ' ' {
				st[j] = append(st[j], row[x])
			}
		}
	}
	return st
}

type craneMove struct {
	N, From, To int
}

func parseCraneMove(line string) craneMove {
	var m craneMove
	if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.N, &m.From, &m.To); err != nil {
		aoc.Logger().Fatalf("bad move %q: %v", line, err)
	}
	m.From--
	m.To--
	return m
}

// apply performs m. The 9001 model moves several crates at once, keeping
// their order; older models move them one at a time.
func (st stacks) apply(m craneMove, model int) {
	from := st[m.From]
	crates := slices.Clone(from[len(from)-m.N:])
	st[m.From] = from[:len(from)-m.N]
	if model < 9001 {
		slices.Reverse(crates)
	}
	st[m.To] = append(st[m.To], crates...)
}

func (st stacks) tops() string {
	var sb strings.Builder
	for _, s := range st {
		if len(s) > 0 {
			sb.WriteByte(s[len(s)-1])
		}
	}
	return sb.String()
}

func (s solver) rearrange(model int) string {
	blocks := s.Blocks()
	st := parseStacks(blocks[0])
	for _, line := range blocks[1] {
		st.apply(parseCraneMove(line), model)
	}
	return st.tops()
}

/*
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() any {
	return s.rearrange(9000)
}

// want=MCD
func (s solver) D5p2() any {
	return s.rearrange(9001)
}

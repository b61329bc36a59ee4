package main

import (
	"slices"
	"strings"

	"github.com/aocgo/aoc"
)

// hash is the Holiday ASCII String Helper algorithm.
func hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func (s solver) initSequence() []string {
	return strings.Split(strings.Join(s.Lines(), ""), ",")
}

type lens struct {
	Label string
	Focal int
}

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s solver) D15p1() any {
	return aoc.Sum(aoc.Map(s.initSequence(), hash)...)
}

// want=145
func (s solver) D15p2() any {
	var boxes [256][]lens
	for _, step := range s.initSequence() {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := &boxes[hash(label)]
			*b = slices.DeleteFunc(*b, func(l lens) bool { return l.Label == label })
			continue
		}
		label, focal := aoc.Cut(step, "=")
		b := &boxes[hash(label)]
		l := lens{label, aoc.Int(focal)}
		if i := slices.IndexFunc(*b, func(l lens) bool { return l.Label == label }); i >= 0 {
			(*b)[i] = l
		} else {
			*b = append(*b, l)
		}
	}
	power := 0
	for i, b := range boxes {
		for j, l := range b {
			power += (i + 1) * (j + 1) * l.Focal
		}
	}
	return power
}

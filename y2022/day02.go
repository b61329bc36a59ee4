package main

import (
	"github.com/aocgo/aoc"
)

// Shapes are numbered by the score they give: rock 1, paper 2, scissors 3.
// Shape s beats s-1 modulo 3.

func roundScore(opponent, me int) int {
	outcome := (me - opponent + 4) % 3 // 0 lose, 1 draw, 2 win
	return me + 3*outcome
}

func (s solver) strategy(round func(opponent, column int) int) int {
	total := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		a, x := aoc.Cut(line, " ")
		total += round(int(a[0]-'A')+1, int(x[0]-'X'))
	})
	return total
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	return s.strategy(func(opponent, column int) int {
		return roundScore(opponent, column+1)
	})
}

// want=12
func (s solver) D2p2() any {
	return s.strategy(func(opponent, column int) int {
		// column is 0 to lose, 1 to draw and 2 to win.
		me := (opponent-1+column+2)%3 + 1
		return roundScore(opponent, me)
	})
}

package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

// cubes counts cubes by colour.
type cubes map[string]int

type game struct {
	ID     int
	Rounds []cubes
}

func parseGame(line string) game {
	head, rest := aoc.Cut(line, ": ")
	g := game{ID: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, round := range strings.Split(rest, ";") {
		c := cubes{}
		for _, draw := range strings.Split(round, ",") {
			n, colour := aoc.Cut(strings.TrimSpace(draw), " ")
			c[colour] += aoc.Int(n)
		}
		g.Rounds = append(g.Rounds, c)
	}
	return g
}

// fewest returns the fewest cubes of each colour that make g possible.
func (g game) fewest() cubes {
	out := cubes{}
	for _, r := range g.Rounds {
		for colour, n := range r {
			out[colour] = max(out[colour], n)
		}
	}
	return out
}

func (s solver) games() []game {
	var gs []game
	s.ForLines(func(line string) {
		if line != "" {
			gs = append(gs, parseGame(line))
		}
	})
	return gs
}

var bagLimits = cubes{"red": 12, "green": 13, "blue": 14}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
outer:
	for _, g := range s.games() {
		for colour, n := range g.fewest() {
			if n > bagLimits[colour] {
				continue outer
			}
		}
		sum += g.ID
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range s.games() {
		f := g.fewest()
		sum += f["red"] * f["green"] * f["blue"]
	}
	return sum
}

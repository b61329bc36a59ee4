package main

import (
	"github.com/aocgo/aoc"
)

// partNumber is a number on the schematic and the cells it covers.
type partNumber struct {
	Value int
	Cells []aoc.Pt
}

func schematicNumbers(g aoc.Grid[byte]) []partNumber {
	var out []partNumber
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !aoc.IsDigit(row[x]) {
				continue
			}
			n := partNumber{}
			for ; x < len(row) && aoc.IsDigit(row[x]); x++ {
				n.Value = n.Value*10 + int(row[x]-'0')
				n.Cells = append(n.Cells, aoc.Pt{X: x, Y: y})
			}
			out = append(out, n)
		}
	}
	return out
}

// symbols returns the symbols adjacent to n, including diagonally.
func (n partNumber) symbols(g aoc.Grid[byte]) map[aoc.Pt]byte {
	out := map[aoc.Pt]byte{}
	for _, c := range n.Cells {
		c.ForNeighbors(func(p aoc.Pt) bool {
			if v, ok := g.AtOk(p); ok && v != '.' && !aoc.IsDigit(v) {
				out[p] = v
			}
			return true
		})
	}
	return out
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	g := s.Grid()
	sum := 0
	for _, n := range schematicNumbers(g) {
		if len(n.symbols(g)) > 0 {
			sum += n.Value
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := s.Grid()
	gears := map[aoc.Pt][]int{}
	for _, n := range schematicNumbers(g) {
		for p, v := range n.symbols(g) {
			if v == '*' {
				gears[p] = append(gears[p], n.Value)
			}
		}
	}
	sum := 0
	for _, parts := range gears {
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}
	return sum
}

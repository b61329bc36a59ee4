// Command example is the starting point for a new year of solutions.
// Copy it, rename the year and add a dayNN.go file per puzzle.
package main

import (
	"embed"

	"github.com/aocgo/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed example.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	sum := 0
	s.ForLines(func(line string) {
		var digits []int
		for i := 0; i < len(line); i++ {
			if aoc.IsDigit(line[i]) {
				digits = append(digits, int(line[i]-'0'))
			}
		}
		if len(digits) > 0 {
			sum += 10*digits[0] + digits[len(digits)-1]
		}
	})
	return sum
}

// want=???
func (s solver) D1p2() any {
	return "not-implemented"
}

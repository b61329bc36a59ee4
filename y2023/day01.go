package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// calibration returns the two digit number made of the first and last
// digit on the line. Spelled out digits count when spelled is set, and
// may overlap.
func calibration(line string, spelled bool) int {
	var digits []int
	for i := range line {
		if aoc.IsDigit(line[i]) {
			digits = append(digits, int(line[i]-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for d, w := range spelledDigits {
			if strings.HasPrefix(line[i:], w) {
				digits = append(digits, d+1)
				break
			}
		}
	}
	if len(digits) == 0 {
		return 0
	}
	return digits[0]*10 + digits[len(digits)-1]
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
		sum += calibration(line, false)
	})
	return sum
}

/*
want=359

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
7bbxlhgdbrh9sph44sbboneoneightxcn
*/
func (s solver) D1p2() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += calibration(line, true)
	})
	return sum
}

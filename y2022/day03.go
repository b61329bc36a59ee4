package main

import (
	"github.com/aocgo/aoc"
)

func priority(item rune) int {
	if item >= 'a' && item <= 'z' {
		return int(item-'a') + 1
	}
	return int(item-'A') + 27
}

// common returns the item found in every one of the lists.
func common(lists ...string) rune {
	seen := aoc.SetOf([]rune(lists[0])...)
	for _, l := range lists[1:] {
		next := aoc.Set[rune]{}
		for _, r := range l {
			if seen.Has(r) {
				next.Add(r)
			}
		}
		seen = next
	}
	if len(seen) != 1 {
		aoc.Logger().Fatalf("%d common items in %q", len(seen), lists)
	}
	return aoc.AnyKey(seen)
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	sum := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		half := len(line) / 2
		sum += priority(common(line[:half], line[half:]))
	})
	return sum
}

// want=70
func (s solver) D3p2() any {
	lines := s.Lines()
	sum := 0
	for i := 0; i+2 < len(lines); i += 3 {
		sum += priority(common(lines[i : i+3]...))
	}
	return sum
}

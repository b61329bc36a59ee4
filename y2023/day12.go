package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

type springRow struct {
	Springs string
	Groups  []int
}

func parseSpringRow(line string) springRow {
	springs, groups := aoc.Cut(line, " ")
	return springRow{
		Springs: springs,
		Groups:  aoc.Fields(groups, ","),
	}
}

// unfold returns r repeated n times, the springs joined by '?'.
func (r springRow) unfold(n int) springRow {
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return springRow{
		Springs: strings.Join(springs, "?"),
		Groups:  groups,
	}
}

// arrangements counts the ways the unknown springs can be filled in to
// match the damaged groups.
func (r springRow) arrangements() int {
	springs, groups := r.Springs, r.Groups
	// ways[i][j] counts arrangements of springs[i:] with groups[j:].
	ways := make([][]int, len(springs)+2)
	for i := range ways {
		ways[i] = make([]int, len(groups)+1)
	}
	ways[len(springs)][len(groups)] = 1
	ways[len(springs)+1][len(groups)] = 1
	for i := len(springs) - 1; i >= 0; i-- {
		for j := len(groups); j >= 0; j-- {
			c := springs[i]
			n := 0
			if c == '.' || c == '?' {
				n += ways[i+1][j]
			}
			if (c == '#' || c == '?') && j < len(groups) {
				end := i + groups[j]
				if end <= len(springs) &&
					!strings.ContainsRune(springs[i:end], '.') &&
					(end == len(springs) || springs[end] != '#') {
					n += ways[end+1][j+1]
				}
			}
			ways[i][j] = n
		}
	}
	return ways[0][0]
}

func (s solver) springRows() []springRow {
	var rows []springRow
	s.ForLines(func(line string) {
		if line != "" {
			rows = append(rows, parseSpringRow(line))
		}
	})
	return rows
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return aoc.Sum(aoc.Map(s.springRows(), springRow.arrangements)...)
}

// want=525152
func (s solver) D12p2() any {
	return aoc.ParallelMapFold(s.springRows(), func(r springRow) int {
		return r.unfold(5).arrangements()
	}, func(acc, n int) int {
		return acc + n
	}, 0)
}

package main

import (
	"slices"

	"github.com/aocgo/aoc"
)

// span is the half open interval [Lo, Hi).
type span struct {
	Lo, Hi int
}

type mapping struct {
	Dst, Src, Len int
}

// almanacMap is one of the category maps, sorted by source start.
type almanacMap []mapping

func parseAlmanac(blocks [][]string) (seeds []int, maps []almanacMap) {
	seeds = aoc.Fields(aoc.TrimPrefix(blocks[0][0], "seeds:"), "")
	for _, b := range blocks[1:] {
		var m almanacMap
		for _, line := range b[1:] {
			v := aoc.Fields(line, "")
			m = append(m, mapping{Dst: v[0], Src: v[1], Len: v[2]})
		}
		slices.SortFunc(m, func(a, b mapping) int { return a.Src - b.Src })
		maps = append(maps, m)
	}
	return seeds, maps
}

// apply maps every span through m, splitting spans that straddle mapping
// boundaries. Unmapped values map to themselves.
func (m almanacMap) apply(in []span) []span {
	var out []span
	for _, sp := range in {
		cur := sp.Lo
		for _, r := range m {
			if cur >= sp.Hi {
				break
			}
			end := r.Src + r.Len
			if end <= cur {
				continue
			}
			if r.Src >= sp.Hi {
				break
			}
			if cur < r.Src {
				out = append(out, span{cur, r.Src})
				cur = r.Src
			}
			hi := min(end, sp.Hi)
			out = append(out, span{cur - r.Src + r.Dst, hi - r.Src + r.Dst})
			cur = hi
		}
		if cur < sp.Hi {
			out = append(out, span{cur, sp.Hi})
		}
	}
	return out
}

func lowestLocation(spans []span, maps []almanacMap) int {
	for _, m := range maps {
		spans = m.apply(spans)
	}
	return slices.MinFunc(spans, func(a, b span) int { return a.Lo - b.Lo }).Lo
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	seeds, maps := parseAlmanac(s.Blocks())
	spans := aoc.Map(seeds, func(v int) span { return span{v, v + 1} })
	return lowestLocation(spans, maps)
}

// want=46
func (s solver) D5p2() any {
	seeds, maps := parseAlmanac(s.Blocks())
	var spans []span
	for i := 0; i+1 < len(seeds); i += 2 {
		spans = append(spans, span{seeds[i], seeds[i] + seeds[i+1]})
	}
	return lowestLocation(spans, maps)
}

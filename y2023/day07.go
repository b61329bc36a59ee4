package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aocgo/aoc"
)

type hand struct {
	Cards string
	Bid   int
}

// Hand types from weakest to strongest.
const (
	highCard = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

// handType classifies cards. With jokers set, each J joins the largest
// group of the other cards.
func handType(cards string, jokers bool) int {
	counts := map[rune]int{}
	j := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			j++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += j

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func winnings(hands []hand, jokers bool) int {
	order := "23456789TJQKA"
	if jokers {
		order = "J23456789TQKA"
	}
	type ranked struct {
		hand
		kind     int
		strength []int
	}
	rs := aoc.Map(hands, func(h hand) ranked {
		return ranked{
			hand: h,
			kind: handType(h.Cards, jokers),
			strength: aoc.Map([]byte(h.Cards), func(c byte) int {
				return strings.IndexByte(order, c)
			}),
		}
	})
	slices.SortFunc(rs, func(a, b ranked) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		return slices.Compare(a.strength, b.strength)
	})
	total := 0
	for i, r := range rs {
		total += (i + 1) * r.Bid
	}
	return total
}

func (s solver) hands() []hand {
	var hs []hand
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		cards, bid := aoc.Cut(line, " ")
		hs = append(hs, hand{Cards: cards, Bid: aoc.Int(bid)})
	})
	return hs
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return winnings(s.hands(), false)
}

// want=5905
func (s solver) D7p2() any {
	return winnings(s.hands(), true)
}

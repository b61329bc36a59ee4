package main

import (
	"testing"

	"github.com/aocgo/aoc/aoctest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSamples(t *testing.T) {
	aoctest.Samples(t, 2022, source, &solver{})
}

func TestRoundScore(t *testing.T) {
	for opponent := 1; opponent <= 3; opponent++ {
		assert.Equal(t, opponent+3, roundScore(opponent, opponent), "draw")
		beats := opponent%3 + 1
		assert.Equal(t, beats+6, roundScore(opponent, beats), "win")
		loses := (opponent+1)%3 + 1
		assert.Equal(t, loses, roundScore(opponent, loses), "loss")
	}
}

func TestCommon(t *testing.T) {
	assert.Equal(t, 'p', common("vJrwpWtwJgWr", "hcsFMMfFFhFp"))
	assert.Equal(t, 16, priority('p'))
	assert.Equal(t, 38, priority('L'))
}

func TestStacks(t *testing.T) {
	st := parseStacks([]string{
		"    [D]",
		"[N] [C]",
		"[Z] [M] [P]",
		" 1   2   3",
	})
	want := stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("parseStacks (-want +got):\n%s", diff)
	}
	st.apply(craneMove{N: 2, From: 1, To: 0}, 9001)
	assert.Equal(t, "DMP", st.tops())
	assert.Equal(t, []byte("ZNCD"), st[0])
}

func TestMarkerEnd(t *testing.T) {
	assert.Equal(t, 19, markerEnd("mjqjpqmgbljsphdztnvjfqwrcgsmlb", 14))
	assert.Equal(t, -1, markerEnd("aaaa", 2))
}

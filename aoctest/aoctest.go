// Package aoctest runs puzzle solvers against the samples in their doc
// comments.
package aoctest

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/aocgo/aoc"
)

// Samples runs every D{day}p{part} method of slvr against each want=
// sample found in src, one subtest per sample.
func Samples(t *testing.T, year int, src fs.FS, slvr any) {
	t.Helper()
	cases := aoc.SampleCases(year, src, slvr)
	if len(cases) == 0 {
		t.Fatalf("no samples found for %d", year)
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%s#%d", c.Name, c.Index), func(t *testing.T) {
			if got := c.Run(); got != c.Want {
				t.Errorf("%s sample %d = %s; want %s", c.Name, c.Index, got, c.Want)
			}
		})
	}
}

package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

// wiring is the number of wires that must be cut to split the machine.
const wiring = 3

// parseWiring reads the wiring diagram. Components get ids in the order
// they first appear.
func parseWiring(lines []string) *aoc.FlowNetwork[string] {
	var n aoc.FlowNetwork[string]
	for _, line := range lines {
		if line == "" {
			continue
		}
		name, rest := aoc.Cut(line, ":")
		n.Node(name)
		for _, other := range strings.Fields(rest) {
			n.AddEdge(name, other)
		}
	}
	return &n
}

// splitSizes returns the sizes of the two groups left once the wiring
// between them is cut. A node is on the far side of node 0 when exactly
// wiring units of flow reach it.
func splitSizes(n *aoc.FlowNetwork[string]) (near, far int) {
	near = 1
	for id := 1; id < n.Len(); id++ {
		if n.MaxFlow(0, id) == wiring {
			far++
		} else {
			near++
		}
	}
	return near, far
}

/*
want=54

jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
*/
func (s solver) D25p1() any {
	near, far := splitSizes(parseWiring(s.Lines()))
	return near * far
}

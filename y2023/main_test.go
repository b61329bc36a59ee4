package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/aocgo/aoc"
	"github.com/aocgo/aoc/aoctest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	aoctest.Samples(t, 2023, source, &solver{})
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func grid(s string) aoc.Grid[byte] {
	return aoc.Map(lines(s), func(l string) []byte { return []byte(l) })
}

const heatLossMap = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

func TestHeatLossGrowsWithMinimumRun(t *testing.T) {
	g := aoc.MapGrid(grid(heatLossMap), func(b byte) int { return int(b - '0') })
	prev := 0
	for minRun := 1; minRun <= 4; minRun++ {
		got := leastHeatLoss(g, minRun, 10)
		assert.GreaterOrEqual(t, got, prev, "minRun=%d", minRun)
		prev = got
	}
	assert.Equal(t, 102, leastHeatLoss(g, 1, 3))
	assert.Equal(t, 94, leastHeatLoss(g, 4, 10))
}

func TestCrucibleGraphTurns(t *testing.T) {
	g := aoc.MapGrid(grid("123\n456\n789"), func(b byte) int { return int(b - '0') })
	cg := crucibleGraph(g, 1, 3)
	from := crucible{aoc.Pt{}, aoc.Up}
	want := map[crucible]int{
		{aoc.Pt{X: 1, Y: 0}, aoc.Right}: 2,
		{aoc.Pt{X: 2, Y: 0}, aoc.Right}: 5,
	}
	if diff := cmp.Diff(want, cg.Edges[from]); diff != "" {
		t.Errorf("edges from %v (-want +got):\n%s", from, diff)
	}
}

const brickSnapshot = `
1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9`

func TestSettle(t *testing.T) {
	supporters := settle(parseBricks(lines(brickSnapshot)))
	want := [][]int{nil, {0}, {0}, {1, 2}, {1, 2}, {3, 4}, {5}}
	if diff := cmp.Diff(want, supporters); diff != "" {
		t.Errorf("supporters (-want +got):\n%s", diff)
	}
	// Bricks only rest on bricks that settled before them, so the support
	// graph has no cycles.
	for i, sup := range supporters {
		for _, j := range sup {
			assert.Less(t, j, i)
		}
	}
	deps := dependants(supporters)
	assert.Equal(t, 6, chainReaction(0, supporters, deps))
	assert.Equal(t, 1, chainReaction(5, supporters, deps))
	assert.Equal(t, 0, chainReaction(6, supporters, deps))
}

func TestParseBrick(t *testing.T) {
	got := parseBrick("2,2,9~0,2,7")
	want := brick{Lo: aoc.Pt3Int{X: 0, Y: 2, Z: 7}, Hi: aoc.Pt3Int{X: 2, Y: 2, Z: 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseBrick (-want +got):\n%s", diff)
	}
}

const hikingMap = `
#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#`

func TestLongestHike(t *testing.T) {
	m := newTrailMap(grid(hikingMap))
	assert.Equal(t, 94, m.longestHike(true))
	assert.Equal(t, 154, m.longestHike(false))

	// Collapsing corridors from a flood fill finds the same junctions.
	g := m.grid.ToGraph(m.start, false, func(b byte) bool { return b == '#' })
	n, ok := g.LongestPath(m.start, m.end)
	require.True(t, ok)
	assert.Equal(t, 154, n)
}

func TestJunctionGraph(t *testing.T) {
	m := newTrailMap(grid(hikingMap))
	dry := m.junctionGraph(false)
	for p := range dry.Nodes {
		assert.True(t, m.isJunction(p), "%v", p)
	}
	// Without slopes every trail can be walked both ways.
	for a, es := range dry.Edges {
		for b, w := range es {
			assert.Equal(t, w, dry.Edges[b][a], "%v-%v", a, b)
		}
	}
	icy := m.junctionGraph(true)
	assert.Less(t, countEdges(icy), countEdges(dry))
}

func countEdges(g *aoc.Graph[aoc.Pt]) int {
	n := 0
	for _, es := range g.Edges {
		n += len(es)
	}
	return n
}

const wiringDiagram = `
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
frs: qnr lhk lsr`

func TestWiringFlow(t *testing.T) {
	n := parseWiring(lines(wiringDiagram))
	require.Equal(t, 15, n.Len())
	assert.Equal(t, "jqt", n.Name(0))
	assert.Equal(t, "rhn", n.Name(1))
	for id := 1; id < n.Len(); id++ {
		f := n.MaxFlow(0, id)
		assert.LessOrEqual(t, f, n.Degree(0), "flow to %s", n.Name(id))
		assert.LessOrEqual(t, f, n.Degree(id), "flow to %s", n.Name(id))
		assert.GreaterOrEqual(t, f, wiring, "flow to %s", n.Name(id))
	}
	near, far := splitSizes(n)
	assert.Equal(t, 54, near*far)
}

func TestWiringMinCut(t *testing.T) {
	var g aoc.Graph[string]
	for _, line := range lines(wiringDiagram) {
		name, rest := aoc.Cut(line, ":")
		for _, other := range strings.Fields(rest) {
			g.AddEdge(name, other, 1)
		}
	}
	cut := g.MinCut()
	require.Len(t, cut, wiring)
	for _, e := range cut {
		g.RemoveEdge(e.A, e.B)
	}
	side := len(g.ReachableNodes("jqt"))
	assert.Equal(t, 54, side*(len(g.Nodes)-side))
}

func TestParsers(t *testing.T) {
	t.Run("game", func(t *testing.T) {
		got := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green")
		want := game{ID: 3, Rounds: []cubes{
			{"green": 8, "blue": 6, "red": 20},
			{"blue": 5, "red": 4, "green": 13},
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parseGame (-want +got):\n%s", diff)
		}
	})
	t.Run("springs", func(t *testing.T) {
		got := parseSpringRow("???.### 1,1,3").unfold(2)
		want := springRow{Springs: "???.###????.###", Groups: []int{1, 1, 3, 1, 1, 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unfold (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, parseSpringRow("???.### 1,1,3").arrangements())
		assert.Equal(t, 10, parseSpringRow("?###???????? 3,2,1").arrangements())
	})
	t.Run("dig", func(t *testing.T) {
		assert.Equal(t, digStep{Dir: aoc.Right, N: 6}, parseDigStep("R 6 (#70c710)", false))
		assert.Equal(t, digStep{Dir: aoc.Right, N: 461937}, parseDigStep("R 6 (#70c710)", true))
		assert.Equal(t, digStep{Dir: aoc.Down, N: 56407}, parseDigStep("D 5 (#0dc571)", true))
	})
	t.Run("workflow", func(t *testing.T) {
		name, rules := parseWorkflow("px{a<2006:qkq,m>2090:A,rfg}")
		assert.Equal(t, "px", name)
		want := []rule{
			{Category: 'a', Op: '<', Value: 2006, Target: "qkq"},
			{Category: 'm', Op: '>', Value: 2090, Target: "A"},
			{Target: "rfg"},
		}
		if diff := cmp.Diff(want, rules); diff != "" {
			t.Errorf("parseWorkflow (-want +got):\n%s", diff)
		}
	})
	t.Run("hailstone", func(t *testing.T) {
		got := parseHailstone("20, 19, 15 @  1, -5, -3")
		want := hailstone{Pos: aoc.Pt3Int{X: 20, Y: 19, Z: 15}, Vel: aoc.Pt3Int{X: 1, Y: -5, Z: -3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parseHailstone (-want +got):\n%s", diff)
		}
	})
}

func TestHandType(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   int
	}{
		{"32T3K", false, onePair},
		{"KK677", false, twoPair},
		{"T55J5", false, threeOfAKind},
		{"T55J5", true, fourOfAKind},
		{"JJJJJ", true, fiveOfAKind},
		{"23332", false, fullHouse},
		{"23456", false, highCard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handType(tt.cards, tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
}

func TestAlmanacSpans(t *testing.T) {
	m := almanacMap{{Dst: 52, Src: 50, Len: 48}, {Dst: 50, Src: 98, Len: 2}}
	got := m.apply([]span{{40, 100}})
	want := []span{{40, 50}, {52, 100}, {50, 52}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("apply (-want +got):\n%s", diff)
	}
}

func TestReachablePlots(t *testing.T) {
	g := grid(`
...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`)
	assert.Equal(t, []int{16, 50, 1594}, reachablePlots(g, 6, 10, 50))
}

func TestHash(t *testing.T) {
	assert.Equal(t, 52, hash("HASH"))
}

func TestReflectionRow(t *testing.T) {
	g := grid(`
#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.`)
	assert.Equal(t, 0, reflectionRow(g, 0))
	assert.Equal(t, 5, reflectionRow(g.Transpose(), 0))
	assert.Equal(t, 3, reflectionRow(g, 1))
}

func TestExtrapolatePlots(t *testing.T) {
	g := grid(`
...........
.##.....##.
.#..#.#..#.
...#...#...
.#.......#.
.....S.....
.#.......#.
...#...#...
.#..#.#..#.
.##.....##.
...........`)
	for _, steps := range []int{49, 82, 115} {
		assert.Equal(t, reachablePlots(g, steps)[0], extrapolatePlots(g, steps), "steps=%d", steps)
	}
	assert.Equal(t, 1996, extrapolatePlots(g, 49))
}

// ticker sends a high pulse on every nth low pulse it receives.
type ticker struct {
	broadcaster
	every, seen int
}

func (tk *ticker) receive(p pulse) []pulse {
	if p.High {
		return nil
	}
	tk.seen++
	if tk.seen%tk.every != 0 {
		return nil
	}
	return tk.send(true)
}

func TestRxPresses(t *testing.T) {
	mods := parseModules(lines(`
broadcaster -> t3, t5
&hub -> rx`))
	hub, ok := mods["hub"].(*conjunction)
	require.True(t, ok)
	for _, n := range []int{3, 5} {
		name := "t" + strconv.Itoa(n)
		mods[name] = &ticker{broadcaster: broadcaster{name: name, out: []string{"hub"}}, every: n}
		hub.last[name] = false
	}
	assert.Equal(t, 15, rxPresses(mods))
}

func TestParseModules(t *testing.T) {
	mods := parseModules(lines(`
broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output`))
	con, ok := mods["con"].(*conjunction)
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"a": false, "b": false}, con.last)
	_, ok = mods["a"].(*flipFlop)
	assert.True(t, ok)
}

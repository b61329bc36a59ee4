package aoc

import (
	"slices"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts      []Pt
		area     int
		interior int
		bounded  int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			area:     25,
			interior: 16,
			bounded:  36,
		},
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 2, Y: 0},
				{X: 2, Y: 1},
				{X: 1, Y: 1},
				{X: 1, Y: 2},
				{X: 0, Y: 2},
				{X: 0, Y: 0},
			},
			area:     3,
			interior: 0,
			bounded:  8,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.area {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.area)
		}
		if got := PolygonInteriorPoints(tt.pts); got != tt.interior {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.interior)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.bounded {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.bounded)
		}
	}
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `/*
want=CMZ

    [D]
[N] [C]
*/`,
			want: sample{
				want: "CMZ",
				input: `    [D]
[N] [C]
`,
			},
		},
		{
			comment: `// want=42`,
			want:    sample{want: "42"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}

	if _, ok := parseSample("// D1p1 solves part one."); ok {
		t.Error("ParseSample accepted a comment without want=")
	}
}

const sampleSource = `package main

/*
want=3

a
b
c
*/
func (s solver) D1p1() any { return nil }

// want=9
func (s solver) D1p2() any { return nil }

/*
want=1
*/
/*
want=2

x
y
*/
func (s solver) D2p1() any { return nil }

func (s solver) D2p2() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go": {Data: []byte(sampleSource)},
	}
	got := extractAllSamples(src)
	want := map[string][]sample{
		"D1p1": {{want: "3", input: "a\nb\nc\n"}},
		"D1p2": {{want: "9", input: "a\nb\nc\n"}},
		"D2p1": {
			{want: "1", input: "a\nb\nc\n"},
			{want: "2", input: "x\ny\n"},
		},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractAllSamples mismatch (-want +got):\n%s", diff)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	return string(s.Input()[:3])
}

func (s testSolver) D1p2() any { return nil }

func (s testSolver) D12p2slow() any { return nil }

func (s testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	require.Len(t, days, 2)
	parts := func(d int) []string {
		var out []string
		for _, p := range days[d].parts {
			out = append(out, p.Part)
		}
		return out
	}
	assert.Equal(t, []string{"1", "2"}, parts(1))
	assert.Equal(t, []string{"2slow"}, parts(12))
}

func TestPuzzleInput(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples: map[string][]sample{
			"D1p1": {{want: "x", input: "ab\ncd\n\nef\n"}},
		},
	}
	assert.Equal(t, []string{"ab", "cd", "", "ef"}, p.Lines())
	assert.Equal(t, [][]string{{"ab", "cd"}, {"ef"}}, p.Blocks())
	if diff := cmp.Diff(Grid[byte]{[]byte("ab"), []byte("cd"), []byte("ef")}, p.Grid()); diff != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleCases(t *testing.T) {
	src := fstest.MapFS{
		"aoc_test.go": {Data: []byte(`package aoc

/*
want=abc

abcdef
*/
func (s testSolver) D1p1() any { return nil }
`)},
	}
	cases := SampleCases(2023, src, &testSolver{})
	require.Len(t, cases, 1)
	assert.Equal(t, "D1p1", cases[0].Name)
	assert.Equal(t, "abc", cases[0].Want)
	assert.Equal(t, "abc", cases[0].Run())
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 6, LCM(2, 3))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 7, LCM(7))
	assert.Equal(t, 4, GCD(12, 8))
	assert.Panics(t, func() { LCM() })
}

func TestExtrapolate(t *testing.T) {
	assert.Equal(t, 68, Extrapolate([]int{10, 13, 16, 21, 30, 45}, true))
	assert.Equal(t, 5, Extrapolate([]int{10, 13, 16, 21, 30, 45}, false))
}

func TestFields(t *testing.T) {
	assert.Equal(t, []int{1, 1, 3}, Fields("1,1,3", ","))
	assert.Equal(t, []int{7, 15, 30}, Fields("  7  15   30", ""))
}

func TestQueues(t *testing.T) {
	pop := func(pq *PQ[string]) []string {
		var out []string
		for pq.Len() > 0 {
			out = append(out, pq.Pop().V)
		}
		return out
	}
	fill := func(pq *PQ[string]) *PQ[string] {
		for i, v := range []string{"b", "a", "c"} {
			pq.Push(&PQI[string]{V: v, P: []int{2, 1, 3}[i]})
		}
		return pq
	}
	assert.Equal(t, []string{"a", "b", "c"}, pop(fill(MinQueue[string]())))
	assert.Equal(t, []string{"c", "b", "a"}, pop(fill(MaxQueue[string]())))

	pq := MinQueue[string]()
	a := &PQI[string]{V: "a", P: 5}
	pq.Push(a)
	pq.Push(&PQI[string]{V: "b", P: 3})
	a.P = 1
	pq.Update(a)
	assert.Equal(t, "a", pq.Pop().V)
	assert.Equal(t, -1, a.Index())

	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestGridRotate(t *testing.T) {
	g := Grid[byte]{
		[]byte("abc"),
		[]byte("def"),
	}
	tests := []struct {
		name string
		got  Grid[byte]
		want Grid[byte]
	}{
		{"clockwise", g.RotateClockwise(), Grid[byte]{[]byte("da"), []byte("eb"), []byte("fc")}},
		{"counter-clockwise", g.RotateCounterClockwise(), Grid[byte]{[]byte("cf"), []byte("be"), []byte("ad")}},
		{"transpose", g.Transpose(), Grid[byte]{[]byte("ad"), []byte("be"), []byte("cf")}},
		{"full-turn", g.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise(), g},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGridHash(t *testing.T) {
	g := Grid[byte]{[]byte("ab"), []byte("cd")}
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())
	c.Set(Pt{1, 1}, 'x')
	assert.NotEqual(t, g.Hash(), c.Hash())
	assert.Equal(t, byte('d'), g.At(Pt{1, 1}))
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Turn(true).Turn(false))
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d.Turn(true).Turn(true), d.Reverse())
		assert.Equal(t, Pt{}, Pt{}.Move(d, 3).Move(d.Reverse(), 3))
		got, ok := ParseDirection(d.String()[0])
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, Pt{X: 0, Y: -2}, Pt{}.Move(Up, 2))
	assert.Equal(t, Pt{X: 2, Y: 3}, StandardizePt(Pt{X: -3, Y: 8}, Pt{X: 5, Y: 5}))
}

func TestShortestPath(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 5)
	g.AddDirectedEdge("c", "d", 1)
	g.AddNode("lonely")

	d, ok := g.ShortestPath("a", "c")
	require.True(t, ok)
	assert.Equal(t, 3, d)

	d, ok = g.ShortestPath("a", "d")
	require.True(t, ok)
	assert.Equal(t, 4, d)

	_, ok = g.ShortestPath("d", "a")
	assert.False(t, ok, "edge c->d is one way")

	_, ok = g.ShortestPath("a", "lonely")
	assert.False(t, ok)
}

func TestLongestPath(t *testing.T) {
	var g Graph[string]
	g.AddEdge("s", "a", 1)
	g.AddEdge("a", "e", 1)
	g.AddEdge("s", "b", 3)
	g.AddEdge("b", "a", 4)
	g.AddEdge("b", "e", 1)

	n, ok := g.LongestPath("s", "e")
	require.True(t, ok)
	assert.Equal(t, 8, n) // s-b-a-e

	g.AddNode("x")
	_, ok = g.LongestPath("s", "x")
	assert.False(t, ok)
}

func TestCollapse(t *testing.T) {
	grid := Grid[byte]{
		[]byte("#.###"),
		[]byte("#...#"),
		[]byte("###.#"),
	}
	g := grid.ToGraph(Pt{1, 0}, false, func(b byte) bool { return b == '#' })
	assert.Equal(t, map[Pt]bool{{1, 0}: true, {3, 2}: true}, g.Nodes)
	assert.Equal(t, 4, g.Edges[Pt{1, 0}][Pt{3, 2}])
}

// twoClusters returns two five-cliques joined by three edges.
func twoClusters() *Graph[int] {
	var g Graph[int]
	for _, base := range []int{0, 10} {
		for i := 0; i < 5; i++ {
			for j := i + 1; j < 5; j++ {
				g.AddEdge(base+i, base+j, 1)
			}
		}
	}
	g.AddEdge(0, 10, 1)
	g.AddEdge(1, 11, 1)
	g.AddEdge(2, 12, 1)
	return &g
}

func TestMinCut(t *testing.T) {
	g := twoClusters()
	cut := g.MinCut()
	require.Len(t, cut, 3)
	for _, e := range cut {
		g.RemoveEdge(e.A, e.B)
	}
	side := g.ReachableNodes(0)
	assert.Len(t, side, 5)
	assert.False(t, side[10])
}

func TestMaxFlow(t *testing.T) {
	var n FlowNetwork[int]
	for a, es := range twoClusters().Edges {
		for b := range es {
			n.AddEdge(a, b)
		}
	}
	require.Equal(t, 10, n.Len())
	src := n.Node(0)
	for id := 0; id < n.Len(); id++ {
		if id == src {
			assert.Zero(t, n.MaxFlow(src, id))
			continue
		}
		got := n.MaxFlow(src, id)
		assert.LessOrEqual(t, got, min(n.Degree(src), n.Degree(id)))
		if n.Name(id) >= 10 {
			assert.Equal(t, 3, got, "flow to %d", n.Name(id))
		} else {
			assert.Greater(t, got, 3, "flow to %d", n.Name(id))
		}
	}
}

func TestFlowNetworkIDs(t *testing.T) {
	var n FlowNetwork[string]
	n.AddEdge("b", "a")
	n.AddEdge("a", "b")
	n.AddEdge("c", "c")
	assert.Equal(t, 0, n.Node("b"))
	assert.Equal(t, 1, n.Node("a"))
	assert.Equal(t, 2, n.Node("c"))
	assert.Equal(t, 1, n.Degree(0))
	assert.Equal(t, 0, n.Degree(2))
	assert.Equal(t, "a", n.Name(1))
}

func TestParallel(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	got := Parallel(in, func(v int) int { return v * v })
	assert.Len(t, got, len(in))
	assert.True(t, slices.IsSortedFunc(got, func(a, b int) int { return a - b }))
	assert.Equal(t, 328350, ParallelMapFold(in, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0))
}

package aoc

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph. Edges[a][b] is the weight of the edge from a
// to b; AddEdge stores both directions, AddDirectedEdge only one.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// ReachableNodes returns the nodes reachable from a, including a.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddDirectedEdge(a, b, dist)
	g.AddDirectedEdge(b, a, dist)
}

// AddDirectedEdge adds an edge from a to b only.
func (g *Graph[K]) AddDirectedEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// ShortestPaths returns the distance from start to every node reachable
// from it, using Dijkstra's algorithm. Weights must not be negative.
func (g *Graph[K]) ShortestPaths(start K) map[K]int {
	dist := map[K]int{start: 0}
	items := map[K]*PQI[K]{}
	done := map[K]bool{}

	pq := MinQueue[K]()
	items[start] = &PQI[K]{V: start}
	pq.Push(items[start])
	for pq.Len() > 0 {
		cur := pq.Pop()
		done[cur.V] = true
		for k, w := range g.Edges[cur.V] {
			if done[k] {
				continue
			}
			d := cur.P + w
			if it, ok := items[k]; ok {
				if d < it.P {
					it.P = d
					dist[k] = d
					pq.Update(it)
				}
				continue
			}
			items[k] = &PQI[K]{V: k, P: d}
			dist[k] = d
			pq.Push(items[k])
		}
	}
	return dist
}

// ShortestPath returns the length of the shortest path from start to end.
func (g *Graph[K]) ShortestPath(start, end K) (int, bool) {
	d, ok := g.ShortestPaths(start)[end]
	return d, ok
}

// LongestPath returns the size of the longest path from start to end that
// visits no node twice. It is exhaustive, so only suitable for small
// graphs.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	ids := make(map[K]int, len(g.Nodes))
	id := func(k K) int {
		i, ok := ids[k]
		if !ok {
			i = len(ids)
			ids[k] = i
		}
		return i
	}
	s, e := id(start), id(end)
	for k := range g.Nodes {
		id(k)
	}
	for k, es := range g.Edges {
		id(k)
		for k2 := range es {
			id(k2)
		}
	}
	adj := make([][]idEdge, len(ids))
	for k, es := range g.Edges {
		for k2, w := range es {
			adj[ids[k]] = append(adj[ids[k]], idEdge{ids[k2], w})
		}
	}
	return longestPathHelper(adj, s, e, make([]bool, len(ids)))
}

// idEdge is an edge to node id to of weight w.
type idEdge struct {
	to, w int
}

func longestPathHelper(adj [][]idEdge, start, end int, visited []bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for _, e := range adj[start] {
		if visited[e.to] {
			continue
		}
		got, ok := longestPathHelper(adj, e.to, end, visited)
		got += e.w
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// Collapse collapses the graph by removing any nodes with only two edges and
// merging the two edges into one. It assumes an undirected graph.
func (g *Graph[K]) Collapse() {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 {
				continue
			}
			trimmed = true
			var ks []K
			var ds []int
			for k, v := range e {
				ks = append(ks, k)
				ds = append(ds, v)
			}

			delete(g.Edges, k1)
			delete(g.Nodes, k1)
			g.RemoveEdge(ks[0], k1)
			g.RemoveEdge(ks[1], k1)
			g.AddEdge(ks[0], ks[1], ds[0]+ds[1])
		}
		if !trimmed {
			break
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}

// AnyKey returns any key from the map.
// It panics if the map is empty.
func AnyKey[K comparable, V any](m map[K]V) K {
	for k := range m {
		return k
	}
	panic("bad")
}

// MinCut calculates the minimum cut of an undirected graph using the
// Stoer–Wagner algorithm. It returns the edges that make up the cut, each
// oriented from the side that does not hold the arbitrary start node.
func (g *Graph[T]) MinCut() []Edge[T] {
	var (
		g2 = g.Clone() // copy of graph to mutate

		start = AnyKey(g2.Nodes) // any node

		// nodes merged into each remaining node
		groups = map[T][]T{}

		minCut = math.MaxInt
		best   []T
	)
	for k := range g2.Nodes {
		groups[k] = []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(start)
		if w < minCut {
			minCut = w
			best = slices.Clone(groups[t])
		}
		groups[s] = append(groups[s], groups[t]...)
		delete(groups, t)
		g2.merge(s, t)
	}

	side := SetOf(best...)
	var (
		cuts   []Edge[T]
		weight int
	)
	for _, v := range best {
		for e, w := range g.Edges[v] {
			if !side.Has(e) {
				cuts = append(cuts, Edge[T]{v, e})
				weight += w
			}
		}
	}
	if weight != minCut {
		panic(fmt.Sprintf("reconstructed cut weight = %d; want %d", weight, minCut))
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	var pq PQ[T]
	var pris = map[T]*PQI[T]{}
	for k := range g.Nodes {
		i := &PQI[T]{
			V: k,
			P: 0,
		}
		if k == start {
			i.P = 1
		}
		pris[k] = i
		pq.Push(i)
	}

	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			p.P += v
			if p.Index() != -1 {
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		svk := g.Edges[s][k]
		g.RemoveEdge(t, k)
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveEdge(s, s)
	delete(g.Nodes, t)
	delete(g.Edges, t)
}

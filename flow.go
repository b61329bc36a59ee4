package aoc

import (
	"math"
	"slices"
)

// FlowNetwork is an undirected network where every edge has capacity 1 in
// each direction. Nodes get dense ids in the order they are first added.
type FlowNetwork[K comparable] struct {
	ids   map[K]int
	names []K
	adj   [][]int

	flow [][]int // residual flow matrix, reused across MaxFlow calls
}

// Node returns the id of k, adding it to the network if needed.
func (n *FlowNetwork[K]) Node(k K) int {
	InitMap(&n.ids)
	if id, ok := n.ids[k]; ok {
		return id
	}
	id := len(n.names)
	n.ids[k] = id
	n.names = append(n.names, k)
	n.adj = append(n.adj, nil)
	return id
}

// Name returns the node with the given id.
func (n *FlowNetwork[K]) Name(id int) K {
	return n.names[id]
}

// Len returns the number of nodes.
func (n *FlowNetwork[K]) Len() int {
	return len(n.names)
}

// AddEdge adds an undirected unit edge between a and b. Duplicate edges
// are ignored.
func (n *FlowNetwork[K]) AddEdge(a, b K) {
	ia, ib := n.Node(a), n.Node(b)
	if ia == ib {
		return
	}
	i, found := slices.BinarySearch(n.adj[ia], ib)
	if found {
		return
	}
	n.adj[ia] = slices.Insert(n.adj[ia], i, ib)
	j, _ := slices.BinarySearch(n.adj[ib], ia)
	n.adj[ib] = slices.Insert(n.adj[ib], j, ia)
}

// Degree returns the number of edges at node id.
func (n *FlowNetwork[K]) Degree(id int) int {
	return len(n.adj[id])
}

// MaxFlow returns the maximum flow from src to dst using Ford–Fulkerson
// with depth-first augmenting paths over a dense residual flow matrix.
// Neighbours are tried in id order. It is not safe for concurrent use.
func (n *FlowNetwork[K]) MaxFlow(src, dst int) int {
	if src == dst {
		return 0
	}
	size := n.Len()
	if len(n.flow) != size {
		n.flow = make([][]int, size)
		for i := range n.flow {
			n.flow[i] = make([]int, size)
		}
	}
	flow := n.flow
	// Flow only ever moves along edges.
	for u, vs := range n.adj {
		for _, v := range vs {
			flow[u][v] = 0
		}
	}
	visited := make([]bool, size)
	for {
		clear(visited)
		if n.augment(src, dst, math.MaxInt, flow, visited) <= 0 {
			return Sum(flow[src]...)
		}
	}
}

// augment pushes up to delta units along one path from `from` to `to` with
// spare capacity and returns the amount pushed.
func (n *FlowNetwork[K]) augment(from, to, delta int, flow [][]int, visited []bool) int {
	visited[from] = true
	if from == to {
		return delta
	}
	for _, next := range n.adj[from] {
		f := flow[from][next]
		if visited[next] || f >= 1 {
			continue
		}
		if d := n.augment(next, to, min(delta, 1-f), flow, visited); d > 0 {
			flow[from][next] += d
			flow[next][from] -= d
			return d
		}
	}
	return 0
}

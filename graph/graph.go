// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements an immutable, CSR-like directed multigraph
// carrying an integer weight and transit time per edge. Construction is
// two-phase: a Builder, created for a fixed node count, accepts streaming
// edge insertions (nodes are not inserted one by one), and
// Build freezes the result into flat incidence arrays so every traversal
// needed by a ratio solver runs in O(1) amortized time.
package graph

import "github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"

// MeanOnly, when set on a Builder, makes every edge's transit time read as
// 1; the transit time given to AddEdge is still stored in the edge record
// but is not consulted. This is the cycle-mean specialization of the
// general cycle-ratio problem.
type edge struct {
	src, tar int
	w        int
	t        int // unused when the owning Graph is mean-only
}

// incidence is a denormalized copy of an edge's attributes alongside the
// edge id, stored once per endpoint so a traversal never needs a second
// lookup into the edge array.
type incidence struct {
	edge int
	node int
	w    int
	t    int
}

// Graph is an immutable directed multigraph over nodes numbered [0,N).
// Self-loops and duplicate edges are both permitted.
type Graph struct {
	meanOnly bool

	edges []edge

	outOffset []int
	inOffset  []int
	outList   []incidence
	inList    []incidence
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.outOffset) - 1 }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// MeanOnly reports whether this graph fixes every transit time at 1.
func (g *Graph) MeanOnly() bool { return g.meanOnly }

// Source returns the source node of edge e.
func (g *Graph) Source(e int) int { return g.edges[e].src }

// Target returns the target node of edge e.
func (g *Graph) Target(e int) int { return g.edges[e].tar }

// Weight returns the weight of edge e.
func (g *Graph) Weight(e int) int { return g.edges[e].w }

// Transit returns the transit time of edge e, which is always 1 when the
// graph is mean-only.
func (g *Graph) Transit(e int) int {
	if g.meanOnly {
		return 1
	}
	return g.edges[e].t
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) int { return g.outOffset[v+1] - g.outOffset[v] }

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v int) int { return g.inOffset[v+1] - g.inOffset[v] }

// OutEdge returns the edge id, neighbor, weight and transit time of the
// i-th outgoing incidence of v.
func (g *Graph) OutEdge(v, i int) (edgeID, neighbor, w, t int) {
	inc := g.outList[g.outOffset[v]+i]
	return inc.edge, inc.node, inc.w, inc.t
}

// InEdge returns the edge id, neighbor, weight and transit time of the
// i-th incoming incidence of v.
func (g *Graph) InEdge(v, i int) (edgeID, neighbor, w, t int) {
	inc := g.inList[g.inOffset[v]+i]
	return inc.edge, inc.node, inc.w, inc.t
}

// TotalWeight returns 2 plus the sum of the absolute values of every edge
// weight. This, not the signed sum, is used throughout this module as the
// "plus infinity" sentinel threaded into solvers: a value strictly
// greater in magnitude than any real node distance a shortest-paths
// computation over these edges could produce.
func (g *Graph) TotalWeight() int {
	total := 2
	for _, e := range g.edges {
		if e.w < 0 {
			total -= e.w
		} else {
			total += e.w
		}
	}
	return total
}

// HasSelfLoop reports whether any edge has equal source and target.
func (g *Graph) HasSelfLoop() bool {
	for _, e := range g.edges {
		if e.src == e.tar {
			return true
		}
	}
	return false
}

// Builder accumulates nodes and edges for a Graph under construction.
// It must not be reused after Build.
type Builder struct {
	meanOnly bool
	numNodes int
	edges    []edge
	outDeg   []int
	inDeg    []int
	built    bool
}

// NewBuilder returns a Builder for a graph with n nodes and no edges yet.
// meanOnly fixes every edge's transit time at 1 regardless of the t
// argument passed to AddEdge.
func NewBuilder(n int, meanOnly bool) *Builder {
	return &Builder{
		meanOnly: meanOnly,
		numNodes: n,
		outDeg:   make([]int, n),
		inDeg:    make([]int, n),
	}
}

// AddEdge inserts an edge u->v with weight w and transit time t (ignored
// when the builder is mean-only). It returns the new edge's id.
func (b *Builder) AddEdge(u, v, w, t int) (int, error) {
	if b.built {
		return 0, cyclerr.New(cyclerr.CodeMalformedInput, "AddEdge called after Build")
	}
	if u < 0 || u >= b.numNodes || v < 0 || v >= b.numNodes {
		return 0, cyclerr.New(cyclerr.CodeMalformedInput, "edge endpoint out of range")
	}
	if !b.meanOnly && t < 1 {
		return 0, cyclerr.New(cyclerr.CodeMalformedInput, "transit time must be >= 1")
	}
	id := len(b.edges)
	b.edges = append(b.edges, edge{src: u, tar: v, w: w, t: t})
	b.outDeg[u]++
	b.inDeg[v]++
	return id, nil
}

// Build freezes the accumulated edges into a Graph with O(1) amortized
// adjacency lookups. The Builder must not be used again afterward.
func (b *Builder) Build() *Graph {
	n := b.numNodes
	m := len(b.edges)

	outOffset := make([]int, n+1)
	inOffset := make([]int, n+1)
	for v := 0; v < n; v++ {
		outOffset[v+1] = outOffset[v] + b.outDeg[v]
		inOffset[v+1] = inOffset[v] + b.inDeg[v]
	}

	outList := make([]incidence, m)
	inList := make([]incidence, m)
	outCursor := append([]int(nil), outOffset[:n]...)
	inCursor := append([]int(nil), inOffset[:n]...)

	for id, e := range b.edges {
		t := e.t
		if b.meanOnly {
			t = 1
		}
		outList[outCursor[e.src]] = incidence{edge: id, node: e.tar, w: e.w, t: t}
		outCursor[e.src]++
		inList[inCursor[e.tar]] = incidence{edge: id, node: e.src, w: e.w, t: t}
		inCursor[e.tar]++
	}

	b.built = true
	return &Graph{
		meanOnly:  b.meanOnly,
		edges:     b.edges,
		outOffset: outOffset,
		inOffset:  inOffset,
		outList:   outList,
		inList:    inList,
	}
}

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package karpoorlin implements the Karp-Orlin minimum cycle ratio
// algorithm: a parametric shortest-paths tree maintained incrementally,
// with a heap holding one entry per edge.
package karpoorlin

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/heap"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

// nodeInfo is the per-node state of the shortest-paths tree, named to echo
// the original algorithm's node-info record.
type nodeInfo struct {
	dist, length int
	degree       int
	parent       int
	prev, next   int
	visited      bool
}

// Solve computes the minimum cycle ratio of g using Karp-Orlin's
// algorithm. g must have a synthetic source node at index 0 (see
// component.Build with addSource). It satisfies ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	n := g.NumNodes()
	m := g.NumEdges()

	ni := make([]nodeInfo, n)
	// Initial tree T(0): every node's parent is the source, at distance 0
	// via a unit-transit imaginary edge; the preorder list is the
	// identity permutation made circular.
	for v := 0; v < n; v++ {
		ni[v] = nodeInfo{
			dist:   0,
			length: 1,
			degree: -1,
			parent: 0,
			prev:   (v - 1 + n) % n,
			next:   (v + 1) % n,
		}
	}
	ni[0].length = 0 // the source itself has no imaginary edge into it
	// The source's n-1 children, minus one.
	ni[0].degree = n - 2

	h := heap.New()
	h.Put(math.Inf(1), -1) // sentinel: heap exhausted reads as +Inf
	handles := make([]heap.Handle, m)
	for e := 0; e < m; e++ {
		handles[e] = h.Put(edgeKey(g, ni, e), e)
	}

	lambda := lambdaSoFar
	prevLambda := math.Inf(-1)
	for {
		ratio.AddIteration(stats)
		lambda = h.PeekKey()
		eStar := h.PeekInfo()
		if math.IsInf(lambda, 1) {
			return lambda, nil
		}
		if lambda < prevLambda {
			return 0, cyclerr.New(cyclerr.CodeNumericalGuard, "lambda decreased across iterations")
		}
		prevLambda = lambda

		u := g.Source(eStar)
		v := g.Target(eStar)
		delta1 := ni[u].dist + g.Weight(eStar) - ni[v].dist
		delta2 := ni[u].length + g.Transit(eStar) - ni[v].length

		beforeV := ni[v].prev
		totalDegree := 0
		w := v
		var subtree []int
		cycleFound := false
		for totalDegree >= 0 {
			ratio.AddNode(stats)
			if w == u {
				cycleFound = true
				break
			}
			subtree = append(subtree, w)
			totalDegree += ni[w].degree
			w = ni[w].next
		}
		if cycleFound {
			return lambda, nil
		}
		wNext := w

		for _, x := range subtree {
			ni[x].dist += delta1
			ni[x].length += delta2
			ni[x].visited = true
		}

		// Tree surgery: splice T(v) out of its old position and in as a
		// new child of u.
		ni[ni[v].parent].degree--
		ni[beforeV].next = wNext
		ni[wNext].prev = beforeV

		ni[v].parent = u
		afterU := ni[u].next
		ni[u].degree++
		ni[u].next = v
		ni[v].prev = u
		last := subtree[len(subtree)-1]
		ni[last].next = afterU
		ni[afterU].prev = last

		// Pass (a): incoming edges into T(v) from outside it.
		for _, y := range subtree {
			for i := 0; i < g.InDegree(y); i++ {
				eid, x, _, _ := g.InEdge(y, i)
				ratio.AddEdge(stats)
				if ni[x].visited {
					continue
				}
				h.UpdateKey(handles[eid], edgeKey(g, ni, eid))
			}
		}
		// Pass (b): outgoing edges from T(v) to outside it.
		for _, x := range subtree {
			for i := 0; i < g.OutDegree(x); i++ {
				eid, y, _, _ := g.OutEdge(x, i)
				ratio.AddEdge(stats)
				if ni[y].visited {
					continue
				}
				h.UpdateKey(handles[eid], edgeKey(g, ni, eid))
			}
		}
		for _, x := range subtree {
			ni[x].visited = false
		}
	}
}

func edgeKey(g *graph.Graph, ni []nodeInfo, e int) float64 {
	u, v := g.Source(e), g.Target(e)
	denom := ni[u].length + g.Transit(e) - ni[v].length
	if denom <= 0 {
		return math.Inf(1)
	}
	numer := ni[u].dist + g.Weight(e) - ni[v].dist
	return float64(numer) / float64(denom)
}

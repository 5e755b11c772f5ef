// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package youngtarjanorlin implements the Young-Tarjan-Orlin dialect of
// the tree-based minimum cycle ratio algorithm: like Karp-Orlin, it
// maintains a parametric shortest-paths tree, but the heap holds one entry
// per non-source node (its best in-edge) rather than one per edge, which
// saves a factor in dense graphs.
package youngtarjanorlin

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/heap"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

type nodeInfo struct {
	dist, length int
	key          int // id of this node's current best in-edge
	ekey         float64
	degree       int
	parent       int
	prev, next   int
	visited      bool
	handle       heap.Handle
}

// Solve computes the minimum cycle ratio of g using the
// Young-Tarjan-Orlin algorithm. g must have a synthetic source node at
// index 0 (see component.Build with addSource). It satisfies
// ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	n := g.NumNodes()

	ni := make([]nodeInfo, n)
	for v := 0; v < n; v++ {
		ni[v] = nodeInfo{
			dist:   0,
			length: 1,
			degree: -1,
			parent: 0,
			prev:   (v - 1 + n) % n,
			next:   (v + 1) % n,
			key:    -1,
			ekey:   math.Inf(1),
		}
	}
	ni[0].length = 0
	ni[0].degree = n - 2 // the source's n-1 children, minus one

	// Seed every non-source node's best in-edge by scanning all edges once.
	for e := 0; e < g.NumEdges(); e++ {
		y := g.Target(e)
		k := edgeKey(g, ni, e)
		if k < ni[y].ekey {
			ni[y].ekey = k
			ni[y].key = e
		}
	}

	h := heap.New()
	h.Put(math.Inf(1), -1) // sentinel
	for v := 1; v < n; v++ {
		ni[v].handle = h.Put(ni[v].ekey, v)
	}

	lambda := lambdaSoFar
	prevLambda := math.Inf(-1)
	for {
		ratio.AddIteration(stats)
		lambda = h.PeekKey()
		v := h.PeekInfo()
		if math.IsInf(lambda, 1) || v < 0 {
			return lambda, nil
		}
		if lambda < prevLambda {
			return 0, cyclerr.New(cyclerr.CodeNumericalGuard, "lambda decreased across iterations")
		}
		prevLambda = lambda
		eStar := ni[v].key
		u := g.Source(eStar)

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

		// Pass (a): for every y in T(v), recompute ekey(y) from scratch
		// over ALL of y's incoming edges (not just the one that changed).
		for _, y := range subtree {
			best := math.Inf(1)
			bestEdge := -1
			for i := 0; i < g.InDegree(y); i++ {
				eid, _, _, _ := g.InEdge(y, i)
				ratio.AddEdge(stats)
				k := edgeKey(g, ni, eid)
				if k < best {
					best, bestEdge = k, eid
				}
			}
			ni[y].ekey = best
			ni[y].key = bestEdge
			h.UpdateNode(ni[y].handle, best, y)
		}
		// Pass (b): for every x in T(v), only LOWER ekey(y) of its
		// outside-neighbors y when the edge x->y actually improves.
		for _, x := range subtree {
			for i := 0; i < g.OutDegree(x); i++ {
				eid, y, _, _ := g.OutEdge(x, i)
				ratio.AddEdge(stats)
				if ni[y].visited {
					continue
				}
				k := edgeKey(g, ni, eid)
				if k < ni[y].ekey {
					ni[y].ekey = k
					ni[y].key = eid
					h.UpdateNode(ni[y].handle, k, y)
				}
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

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tarjan implements Tarjan's shortest-path negative-cycle oracle
// (subtree disassembly) for use as the inner test of Lawler's bisection
// framework (ratio/bisect).
package tarjan

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/bisect"
)

type status int

// Node status, encoding both queue membership and shortest-path tree
// validity. ACTIVE and IN_Q are deliberately the same value: a node "in
// the successor list and not in a deleted subtree" is exactly a node
// waiting in the queue.
const (
	outOfQ status = 0
	inactive status = 1
	inQ status = 2
	active = inQ
)

type nodeInfo struct {
	dist        float64
	degree      int
	parent      int
	edge2parent int
	prev, next  int
	status      status
}

// Solve computes the minimum cycle ratio of g via Lawler's bisection using
// Tarjan's shortest-path oracle. It satisfies ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	return bisect.Run(g, plusInfinity, lambdaSoFar, Oracle, stats), nil
}

// Oracle tests whether the graph re-weighted by lambda has a negative
// cycle, reachable from node 0.
func Oracle(g *graph.Graph, lambda float64, stats *ratio.Stats) (bool, float64) {
	n := g.NumNodes()
	ni := make([]nodeInfo, n)

	const source = 0
	ni[source] = nodeInfo{dist: 0, degree: -1, prev: source, next: source, parent: source, edge2parent: -1, status: inQ}
	for v := 1; v < n; v++ {
		ni[v] = nodeInfo{dist: math.Inf(1), degree: -1, prev: -1, next: -1, parent: -1, edge2parent: -1, status: outOfQ}
	}

	negCycleFound := false
	improved := lambda

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for len(queue) > 0 {
		ratio.AddIteration(stats)
		u := queue[0]
		queue = queue[1:]
		uStat := ni[u].status
		ni[u].status = outOfQ
		if uStat == inactive {
			continue
		}

		udist := ni[u].dist
		for i := 0; i < g.OutDegree(u); i++ {
			eid, v, w, t := g.OutEdge(u, i)
			ratio.AddEdge(stats)
			newDist := udist + float64(w) - lambda*float64(t)
			if newDist >= ni[v].dist {
				continue
			}
			ni[v].dist = newDist

			if ni[v].prev != -1 {
				beforeV := ni[v].prev
				totalDegree := 0
				w2 := v
				cycleHit := false
				for totalDegree >= 0 {
					ratio.AddNode(stats)
					if w2 == u {
						cycleHit = true
						break
					}
					totalDegree += ni[w2].degree
					ni[w2].degree = -1
					ni[w2].prev = -1
					if ni[w2].status == active {
						ni[w2].status = inactive
					}
					w2 = ni[w2].next
				}
				if cycleHit {
					negCycleFound = true
					ni[v].parent = u
					ni[v].edge2parent = eid
					x := u
					totalWeight, totalLen := 0.0, 0.0
					for {
						e := ni[x].edge2parent
						totalLen += float64(g.Transit(e))
						totalWeight += float64(g.Weight(e))
						x = ni[x].parent
						if x == u {
							break
						}
					}
					if newLambda := totalWeight / totalLen; newLambda < improved {
						improved = newLambda
					}
					return true, improved
				}
				wNext := w2
				ni[ni[v].parent].degree--
				ni[beforeV].next = wNext
				ni[wNext].prev = beforeV
			}

			ni[v].parent = u
			ni[v].edge2parent = eid
			ni[u].degree++
			afterU := ni[u].next
			ni[u].next = v
			ni[v].prev = u
			ni[v].next = afterU
			ni[afterU].prev = v

			if ni[v].status == outOfQ {
				ni[v].status = inQ
				queue = append(queue, v)
			} else {
				ni[v].status = active
			}
		}
	}

	return negCycleFound, improved
}

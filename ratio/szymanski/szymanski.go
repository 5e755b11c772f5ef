// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package szymanski implements Szymanski's improved Bellman-Ford pass
// structure as a negative-cycle oracle for Lawler's bisection framework
// (ratio/bisect): nodes are swept in id order each pass, only a node whose
// incoming edge just improved is re-relaxed, and predecessor-pointer walks
// run periodically to detect a closed cycle directly.
package szymanski

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/bisect"
)

// interval is the number of passes between periodic cycle-detection walks.
const interval = 10

type nodeInfo struct {
	dist       float64
	pred       int
	edgeToPred int
	visited    int
	changed    bool
}

// Solve computes the minimum cycle ratio of g via Lawler's bisection using
// Szymanski's oracle. It satisfies ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	return bisect.Run(g, plusInfinity, lambdaSoFar, Oracle, stats), nil
}

// Oracle tests whether the graph re-weighted by lambda has a negative
// cycle, seeded from node 0.
func Oracle(g *graph.Graph, lambda float64, stats *ratio.Stats) (bool, float64) {
	n := g.NumNodes()
	const source = 0

	ni := make([]nodeInfo, n)
	for v := range ni {
		ni[v] = nodeInfo{dist: math.Inf(1), pred: -1, visited: -1}
	}
	ni[source].dist = 0
	ni[source].changed = true

	improved := lambda

	for pass := 0; pass < n; pass++ {
		ratio.AddIteration(stats)
		checkCycle := pass == n-1 || pass%interval == 0
		if checkCycle {
			for v := range ni {
				ni[v].visited = -1
			}
		}

		oneChanged := false
		for u := 0; u < n; u++ {
			if !ni[u].changed {
				continue
			}
			ni[u].changed = false
			udist := ni[u].dist
			for i := 0; i < g.OutDegree(u); i++ {
				eid, v, w, t := g.OutEdge(u, i)
				ratio.AddEdge(stats)
				newDist := udist + float64(w) - lambda*float64(t)
				if newDist < ni[v].dist {
					ni[v].dist = newDist
					ni[v].pred = u
					ni[v].edgeToPred = eid
					ni[v].changed = true
					oneChanged = true
				}
			}
		}

		if ni[source].dist < 0 {
			return true, improved
		}
		if !oneChanged {
			return false, improved
		}
		if !checkCycle {
			continue
		}

		for v := 0; v < n; v++ {
			if ni[v].visited != -1 {
				continue
			}
			u := v
			for ni[u].visited == -1 && ni[u].pred != -1 {
				ni[u].visited = v
				u = ni[u].pred
			}
			if v != ni[u].visited {
				continue
			}
			totalWeight, totalLen := 0.0, 0.0
			x := u
			for {
				e := ni[x].edgeToPred
				totalWeight += float64(g.Weight(e))
				totalLen += float64(g.Transit(e))
				x = ni[x].pred
				if x == u {
					break
				}
			}
			if newLambda := totalWeight / totalLen; newLambda < improved {
				improved = newLambda
				return true, improved
			}
		}
	}

	return false, improved
}

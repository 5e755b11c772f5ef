// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package valiter implements a value-iteration variant of Howard's
// algorithm: the same policy-graph cycle search and Bellman-Ford sweep as
// ratio/howard, but without the reverse breadth first search that anchors
// node potentials to the newest best cycle. Convergence is correspondingly
// slower and is bounded by a fixed pass count rather than a "no change"
// counter.
package valiter

import (
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

type nodeInfo struct {
	dist    float64
	visited int
	policy  int
	target  int
	w       int
	t       int
}

// Solve computes the minimum cycle ratio of g using value iteration. It
// satisfies ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	n := g.NumNodes()
	m := g.NumEdges()

	ni := make([]nodeInfo, n)
	for v := range ni {
		ni[v].dist = plusInfinity
	}
	for e := 0; e < m; e++ {
		u := g.Source(e)
		w := g.Weight(e)
		if float64(w) < ni[u].dist {
			ni[u].dist = float64(w)
			ni[u].policy = e
			ni[u].target = g.Target(e)
			ni[u].w = w
			ni[u].t = g.Transit(e)
		}
	}

	lambda := lambdaSoFar
	checkLimit := n
	checkCount := 0

	for {
		ratio.AddIteration(stats)
		for v := range ni {
			ni[v].visited = -1
		}

		for v := 0; v < n; v++ {
			if ni[v].visited >= 0 {
				continue
			}
			u := v
			for {
				ratio.AddNode(stats)
				ni[u].visited = v
				u = ni[u].target
				if ni[u].visited != -1 {
					break
				}
			}
			if v != ni[u].visited {
				continue
			}

			w := u
			totalWeight, totalLen := 0, 0
			for {
				totalWeight += ni[u].w
				totalLen += ni[u].t
				u = ni[u].target
				if u == w {
					break
				}
			}
			if newLambda := float64(totalWeight) / float64(totalLen); newLambda < lambda {
				lambda = newLambda
			}
		}

		checkCount++
		if checkCount > checkLimit {
			break
		}

		notImproved := true
		for e := 0; e < m; e++ {
			u := g.Source(e)
			v := g.Target(e)
			w := g.Weight(e)
			t := g.Transit(e)
			ratio.AddEdge(stats)
			newDist := ni[v].dist + float64(w) - lambda*float64(t)
			if ni[u].dist-newDist > ratio.Epsilon {
				notImproved = false
				ni[u].dist = newDist
				ni[u].policy = e
				ni[u].target = v
				ni[u].w = w
				ni[u].t = t
			}
		}
		if notImproved {
			break
		}
	}

	return lambda, nil
}

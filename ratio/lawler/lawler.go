// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lawler implements a plain Bellman-Ford negative-cycle oracle,
// phase-delimited by an END_PHASE marker in a FIFO queue, for Lawler's
// bisection framework (ratio/bisect).
package lawler

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/bisect"
)

// endPhase is the sentinel node id marking a phase boundary in the queue.
const endPhase = -1

// Solve computes the minimum cycle ratio of g via Lawler's bisection using
// a Bellman-Ford oracle. It satisfies ratio.Solver.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	return bisect.Run(g, plusInfinity, lambdaSoFar, Oracle, stats), nil
}

// Oracle tests whether the graph re-weighted by lambda has a negative
// cycle, seeded from node 0, using an n-phase Bellman-Ford sweep.
func Oracle(g *graph.Graph, lambda float64, stats *ratio.Stats) (bool, float64) {
	n := g.NumNodes()
	const source = 0

	dist := make([]float64, n)
	notIncluded := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		notIncluded[v] = true
	}
	dist[source] = 0
	notIncluded[source] = false

	queue := []int{source, endPhase}
	found := true
	nphase := 0

	for nphase < n {
		ratio.AddIteration(stats)
		u := queue[0]
		queue = queue[1:]

		if u == endPhase {
			nphase++
			if len(queue) == 0 {
				found = false
				break
			}
			queue = append(queue, endPhase)
			continue
		}

		notIncluded[u] = true
		udist := dist[u]
		for i := 0; i < g.OutDegree(u); i++ {
			_, v, w, t := g.OutEdge(u, i)
			ratio.AddEdge(stats)
			newDist := udist + float64(w) - lambda*float64(t)
			if newDist < dist[v] {
				dist[v] = newDist
				if notIncluded[v] {
					notIncluded[v] = false
					queue = append(queue, v)
				}
			}
		}
	}

	return found, lambda
}

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bisect implements Lawler's outer binary search over lambda,
// shared by the Tarjan, Szymanski and Bellman-Ford negative-cycle oracles
// (ratio/tarjan, ratio/szymanski, ratio/lawler). Each oracle answers one
// question: does the graph re-weighted by w(e) - lambda*t(e) contain a
// negative cycle?
package bisect

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/bound"
)

// Oracle decides whether the graph re-weighted by lambda has a negative
// cycle. If it does, and the oracle can cheaply compute the exact ratio of
// the cycle it found, it may return a tightened value less than lambda in
// improved; otherwise improved equals lambda.
type Oracle func(g *graph.Graph, lambda float64, stats *ratio.Stats) (negCycleFound bool, improved float64)

// Bounds computes the initial [lower, upper] interval for bisection, per
// §4.6: for a mean-only graph, the min and max edge weight; otherwise the
// min w(e)/t(e) over edges with t(e) > 0 as the lower bound, and
// ratio/bound.FindMinLambda's successor-graph estimate as the upper bound —
// the ratio of some real cycle in g, and so never smaller than the true
// minimum, but far tighter than summing every edge weight.
func Bounds(g *graph.Graph, plusInfinity float64) (lower, upper float64) {
	if g.MeanOnly() {
		lower, upper = math.Inf(1), math.Inf(-1)
		for e := 0; e < g.NumEdges(); e++ {
			w := float64(g.Weight(e))
			if w < lower {
				lower = w
			}
			if w > upper {
				upper = w
			}
		}
		return lower, upper
	}
	return bound.Bounds(g, plusInfinity)
}

// Run performs the outer binary search, delegating the negative-cycle test
// to oracle on each trial lambda.
func Run(g *graph.Graph, plusInfinity, lambdaSoFar float64, oracle Oracle, stats *ratio.Stats) float64 {
	lower, upper := Bounds(g, plusInfinity)

	if lambdaSoFar <= lower {
		return lambdaSoFar
	}
	if tightened := 2*lambdaSoFar - lower; tightened < upper {
		upper = tightened
	}

	lambda := upper
	for (upper - lower) > ratio.Epsilon {
		ratio.AddIteration(stats)
		lambda = (upper + lower) / 2

		negCycleFound, improved := oracle(g, lambda, stats)
		if negCycleFound {
			lambda = improved
			if (upper - lambda) < ratio.Epsilon2 {
				break
			}
			upper = lambda
		} else {
			if (lambda - lower) < ratio.Epsilon2 {
				break
			}
			lower = lambda
		}
	}
	return lambda
}

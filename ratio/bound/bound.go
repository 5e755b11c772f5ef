// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bound estimates an upper bound on lambda, used by the bisection
// dialects (through ratio/bisect.Bounds), by building a successor
// graph -- every node picks one outgoing edge, by construction producing
// one cycle per connected piece -- and returning the smallest ratio among
// the cycles found. FindMaxLambda is the same estimator seeded from each
// node's largest outgoing edge instead of its smallest; despite the name,
// it still reports the minimum ratio among ITS discovered cycles, just a
// different, typically looser, set of them.
package bound

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
)

type nodeInfo struct {
	dist    float64
	visited int
	target  int
	w       int
	t       int
}

// FindMinLambda seeds the successor graph from each node's minimum-weight
// outgoing edge.
func FindMinLambda(g *graph.Graph, plusInfinity float64) float64 {
	return findLambdaBound(g, plusInfinity, true)
}

// FindMaxLambda seeds the successor graph from each node's
// maximum-weight outgoing edge.
func FindMaxLambda(g *graph.Graph, plusInfinity float64) float64 {
	return findLambdaBound(g, plusInfinity, false)
}

func findLambdaBound(g *graph.Graph, plusInfinity float64, useMin bool) float64 {
	n := g.NumNodes()
	m := g.NumEdges()

	ni := make([]nodeInfo, n)
	lambda := plusInfinity

	for v := range ni {
		if useMin {
			ni[v].dist = plusInfinity
		} else {
			ni[v].dist = -plusInfinity
		}
	}

	for e := 0; e < m; e++ {
		u := g.Source(e)
		d := float64(g.Weight(e))
		better := (useMin && d < ni[u].dist) || (!useMin && d > ni[u].dist)
		if better {
			ni[u].dist = d
			ni[u].target = g.Target(e)
			ni[u].w = g.Weight(e)
			ni[u].t = g.Transit(e)
		}
	}

	for v := range ni {
		ni[v].visited = -1
	}

	for v := 0; v < n; v++ {
		if ni[v].visited >= 0 {
			continue
		}
		u := v
		for {
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

	return lambda
}

// Bounds returns a [lower, upper] interval no minimum cycle ratio of g can
// fall outside, for use as the outer bisection interval of a Lawler-style
// solver: the lower bound is the smallest w(e)/t(e), the upper bound is
// FindMinLambda. ratio/bisect.Bounds returns this interval for every graph
// that is not mean-only.
func Bounds(g *graph.Graph, plusInfinity float64) (lower, upper float64) {
	upper = FindMinLambda(g, plusInfinity)
	lower = math.Inf(1)
	for e := 0; e < g.NumEdges(); e++ {
		if t := g.Transit(e); t > 0 {
			if k := float64(g.Weight(e)) / float64(t); k < lower {
				lower = k
			}
		}
	}
	return lower, upper
}

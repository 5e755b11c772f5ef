// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package burns implements Burns's critical-graph method: the graph of
// edges currently tight against the running lambda (the "critical" edges)
// is repeatedly topologically sorted; as soon as that critical subgraph
// contains a cycle, the current lambda is optimal. Each round that is not
// yet cyclic computes the largest lambda-adjustment theta consistent with
// keeping every node's distance feasible, and applies it to both lambda
// and every node's distance.
package burns

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

type nodeInfo struct {
	dist   float64
	length int
	indeg  int
}

// Solve computes the minimum cycle ratio of g using Burns's method. It
// satisfies ratio.Solver. It returns a *cyclerr.Error with
// cyclerr.CodeInfeasible if g contains a cycle entirely of zero or
// negative transit time, which Burns's feasibility preprocessing cannot
// handle.
func Solve(g *graph.Graph, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	n := g.NumNodes()
	m := g.NumEdges()

	ni := make([]nodeInfo, n)
	critical := make([]bool, m)

	lambda, err := initialize(g, ni, critical, plusInfinity, lambdaSoFar, stats)
	if err != nil {
		return 0, err
	}

	for {
		ratio.AddIteration(stats)

		for e := 0; e < m; e++ {
			u, v := g.Source(e), g.Target(e)
			delta1 := ni[u].dist + float64(g.Weight(e)) - ni[v].dist
			critical[e] = math.Abs(lambda*float64(g.Transit(e))-delta1) < ratio.SmallEpsilon
		}

		acyclic := topoSortLengths(g, ni, critical, stats)
		if !acyclic {
			break
		}

		theta := math.Inf(-1)
		for e := 0; e < m; e++ {
			u, v := g.Source(e), g.Target(e)
			t := g.Transit(e)
			delta2 := ni[v].length + t - ni[u].length
			if delta2 <= 0 {
				continue
			}
			delta1 := ni[u].dist + float64(g.Weight(e)) - ni[v].dist
			if cand := (lambda*float64(t) - delta1) / float64(delta2); cand > theta {
				theta = cand
			}
		}

		lambda -= theta
		for v := 0; v < n; v++ {
			ni[v].dist -= theta * float64(ni[v].length)
		}
	}

	return lambda, nil
}

// initialize runs the feasibility preprocessing pass: nodes reachable
// using only non-positive-transit edges are given a topological distance,
// seeding both the initial node distances and the initial lambda.
func initialize(g *graph.Graph, ni []nodeInfo, critical []bool, plusInfinity, lambdaSoFar float64, stats *ratio.Stats) (float64, error) {
	n := g.NumNodes()
	m := g.NumEdges()

	for e := 0; e < m; e++ {
		critical[e] = g.Transit(e) <= 0
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		indeg := 0
		for i := 0; i < g.InDegree(v); i++ {
			eid, _, _, _ := g.InEdge(v, i)
			if critical[eid] {
				indeg++
			}
		}
		ni[v].indeg = indeg
		if indeg == 0 {
			ni[v].dist = 0
			queue = append(queue, v)
		} else {
			ni[v].dist = plusInfinity
		}
	}

	visited := 0
	for len(queue) > 0 {
		ratio.AddIteration(stats)
		u := queue[0]
		queue = queue[1:]
		visited++
		for i := 0; i < g.OutDegree(u); i++ {
			eid, v, w, _ := g.OutEdge(u, i)
			if !critical[eid] {
				continue
			}
			ratio.AddEdge(stats)
			if cand := ni[u].dist + float64(w); cand < ni[v].dist {
				ni[v].dist = cand
			}
			ni[v].indeg--
			if ni[v].indeg == 0 {
				queue = append(queue, v)
			}
		}
	}
	if visited != n {
		return 0, cyclerr.New(cyclerr.CodeInfeasible, "cycle with zero or negative transit time")
	}

	lambda := lambdaSoFar
	for e := 0; e < m; e++ {
		t := g.Transit(e)
		if t <= 0 {
			continue
		}
		u, v := g.Source(e), g.Target(e)
		delta := ni[u].dist + float64(g.Weight(e)) - ni[v].dist
		if cand := delta / float64(t); cand < lambda {
			lambda = cand
		}
	}
	return lambda, nil
}

// topoSortLengths topologically sorts the critical subgraph, assigning
// every node the shortest (most negative) critical-path length from a
// source of the critical subgraph. It reports whether the critical
// subgraph is acyclic.
func topoSortLengths(g *graph.Graph, ni []nodeInfo, critical []bool, stats *ratio.Stats) bool {
	n := g.NumNodes()
	queue := make([]int, 0, n)

	for v := 0; v < n; v++ {
		indeg := 0
		for i := 0; i < g.InDegree(v); i++ {
			eid, _, _, _ := g.InEdge(v, i)
			if critical[eid] {
				indeg++
			}
		}
		ni[v].indeg = indeg
		if indeg == 0 {
			ni[v].length = 0
			queue = append(queue, v)
		} else {
			ni[v].length = math.MaxInt32
		}
	}

	visited := 0
	for len(queue) > 0 {
		ratio.AddIteration(stats)
		u := queue[0]
		queue = queue[1:]
		visited++
		for i := 0; i < g.OutDegree(u); i++ {
			eid, v, _, t := g.OutEdge(u, i)
			if !critical[eid] {
				continue
			}
			ratio.AddEdge(stats)
			if cand := ni[u].length - t; cand < ni[v].length {
				ni[v].length = cand
			}
			ni[v].indeg--
			if ni[v].indeg == 0 {
				queue = append(queue, v)
			}
		}
	}
	return visited == n
}

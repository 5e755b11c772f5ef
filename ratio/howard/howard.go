// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package howard implements Howard's policy iteration algorithm for the
// minimum cycle ratio problem: maintain a policy graph where every node
// picks one outgoing edge, repeatedly find its (unique, per connected
// piece) cycle of smallest ratio, anchor potentials by a reverse breadth
// first search from that cycle, then relax every edge once more.
package howard

import (
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

type nodeInfo struct {
	dist    float64
	visited int // node id that discovered this node during cycle search, or -1
	policy  int // chosen outgoing edge
	target  int
	w       int
	t       int
}

// Solve computes the minimum cycle ratio of g using Howard's policy
// iteration. It satisfies ratio.Solver.
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

		bestNode := -1
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
				bestNode = u
			}
		}

		if bestNode == -1 {
			checkCount++
			if checkCount > checkLimit {
				break
			}
		} else {
			checkCount = 0
			anchor(g, ni, bestNode, lambda, stats)
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

// anchor re-anchors node potentials along the policy tree rooted at the
// just-found minimum cycle, via a reverse breadth-first search from
// bestNode over the policy edges pointing into it.
func anchor(g *graph.Graph, ni []nodeInfo, bestNode int, lambda float64, stats *ratio.Stats) {
	n := len(ni)
	for v := range ni {
		ni[v].visited = 0
	}
	ni[bestNode].visited = -1

	queue := make([]int, 0, n)
	queue = append(queue, bestNode)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for i := 0; i < g.InDegree(v); i++ {
			_, u, _, _ := g.InEdge(v, i)
			ratio.AddEdge(stats)
			if ni[u].visited == -1 {
				continue
			}
			if ni[u].target != v {
				continue
			}
			ni[u].visited = -1
			ni[u].dist = ni[v].dist + float64(ni[u].w) - lambda*float64(ni[u].t)
			queue = append(queue, u)
		}
	}
}

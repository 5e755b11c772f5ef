// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scc decomposes a graph into strongly connected components using
// Kosaraju's two-pass algorithm. Both passes are iterative, stack-based
// depth-first traversals so that graphs with millions of nodes do not blow
// the call stack.
package scc

import "github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"

// frame is one entry of an explicit DFS stack: the node being visited and
// the index of the next outgoing (or incoming) edge to examine.
type frame struct {
	node      int
	edgeIndex int
}

// Result holds the outcome of decomposing a graph into strongly connected
// components.
type Result struct {
	// Comp[v] is the component id of node v, assigned in an order with no
	// guaranteed relationship to topological order beyond what Kosaraju's
	// algorithm happens to produce.
	Comp []int
	// NumComponents is the total number of components found.
	NumComponents int
}

// Decompose runs Kosaraju's algorithm on g.
func Decompose(g *graph.Graph) Result {
	n := g.NumNodes()
	order := forwardFinishOrder(g, n)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}

	next := 0
	var stack []frame
	for _, start := range order {
		if comp[start] != -1 {
			continue
		}
		comp[start] = next
		stack = append(stack[:0], frame{node: start})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.edgeIndex < g.InDegree(top.node) {
				_, neighbor, _, _ := g.InEdge(top.node, top.edgeIndex)
				top.edgeIndex++
				if comp[neighbor] == -1 {
					comp[neighbor] = next
					stack = append(stack, frame{node: neighbor})
				}
				continue
			}
			stack = stack[:len(stack)-1]
		}
		next++
	}

	return Result{Comp: comp, NumComponents: next}
}

// forwardFinishOrder runs an iterative DFS over the forward graph and
// returns node ids in decreasing finish-time order.
func forwardFinishOrder(g *graph.Graph, n int) []int {
	visited := make([]bool, n)
	order := make([]int, 0, n)
	var stack []frame

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		stack = append(stack[:0], frame{node: s})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.edgeIndex < g.OutDegree(top.node) {
				_, neighbor, _, _ := g.OutEdge(top.node, top.edgeIndex)
				top.edgeIndex++
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, frame{node: neighbor})
				}
				continue
			}
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	// order is in increasing finish time; Kosaraju's second pass wants
	// decreasing finish time.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// IsAcyclic reports whether g has no directed cycle at all: every
// component is a singleton and no node has a self-loop.
func IsAcyclic(g *graph.Graph, r Result) bool {
	if r.NumComponents != g.NumNodes() {
		return false
	}
	return !g.HasSelfLoop()
}

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package component builds, for a decomposed graph, one sub-graph per
// strongly connected component, optionally prepending a synthetic source
// node with imaginary zero-weight edges to every real node. The returned
// Graph is the sole owner of its sub-graphs: they are allocated together
// and released together when the Graph is no longer referenced.
package component

import (
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/scc"
)

// SCC is one materialized strongly connected component: its own sub-graph
// plus the mapping from local node ids back to the original graph's node
// ids (offset by one if a synthetic source was added).
type SCC struct {
	Sub *graph.Graph
	// Orig[localID] is the original node id, or -1 for the synthetic
	// source if one was added.
	Orig []int
	// HasSource reports whether Sub has a synthetic source at local index 0.
	HasSource bool
}

// Graph is the component graph: one SCC per strongly connected component
// of the original graph, indexed by component id, plus the inter-SCC
// edges between them. No ratio solver reads Edges.
type Graph struct {
	Components []SCC
	// Edges holds the (source component, target component) pair of every
	// original edge whose endpoints lie in different components. Duplicate
	// pairs are kept.
	Edges [][2]int
}

// Build partitions g according to r (the output of scc.Decompose) into one
// sub-graph per component. A component with no intra-component edges is
// kept, with an edge-less sub-graph. addSource controls whether each sub-graph gets a synthetic source
// node at local index 0 with imaginary 0-weight, unit-transit edges to
// every real node, as required by the tree-based solvers (§4.5).
func Build(g *graph.Graph, r scc.Result, addSource bool) *Graph {
	byComp := make([][]int, r.NumComponents)
	for v, c := range r.Comp {
		byComp[c] = append(byComp[c], v)
	}

	cg := &Graph{}
	for _, nodes := range byComp {
		if len(nodes) == 0 {
			continue
		}
		local := make(map[int]int, len(nodes))
		offset := 0
		if addSource {
			offset = 1
		}
		for i, v := range nodes {
			local[v] = i + offset
		}

		n := len(nodes) + offset
		b := graph.NewBuilder(n, g.MeanOnly())
		for _, v := range nodes {
			lu := local[v]
			for i := 0; i < g.OutDegree(v); i++ {
				eid, neighbor, _, _ := g.OutEdge(v, i)
				lv, ok := local[neighbor]
				if !ok {
					cg.Edges = append(cg.Edges, [2]int{r.Comp[v], r.Comp[neighbor]})
					continue
				}
				w := g.Weight(eid)
				t := g.Transit(eid)
				b.AddEdge(lu, lv, w, t) // endpoints are always in range by construction
			}
		}
		// The synthetic source's imaginary zero-weight, unit-transit edges
		// to every real node are never materialized: a tree-based solver
		// builds T(0) directly from HasSource without consulting the edge
		// array (§4.4, §4.5).

		orig := make([]int, n)
		if addSource {
			orig[0] = -1
		}
		for v, lv := range local {
			orig[lv] = v
		}

		cg.Components = append(cg.Components, SCC{
			Sub:       b.Build(),
			Orig:      orig,
			HasSource: addSource,
		})
	}
	return cg
}

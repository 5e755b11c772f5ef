// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cyclratio is the top-level driver: it decomposes a graph into
// strongly connected components, runs a configured ratio-solver dialect
// over each non-trivial one, and combines the per-component results into
// the graph's overall minimum (or maximum) cycle ratio.
package cyclratio

import (
	"math"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/component"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/burns"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/howard"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/karpoorlin"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/lawler"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/szymanski"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/tarjan"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/valiter"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio/youngtarjanorlin"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/scc"
)

// dialect describes one ratio-solver implementation: its Solve function
// and whether it requires a synthetic source node (the tree-based
// dialects do; the bisection and policy-iteration dialects do not).
type dialect struct {
	solve     ratio.Solver
	addSource bool
}

var dialects = map[string]dialect{
	"karp-orlin":        {karpoorlin.Solve, true},
	"young-tarjan-orlin": {youngtarjanorlin.Solve, true},
	"tarjan":            {tarjan.Solve, false},
	"szymanski":         {szymanski.Solve, false},
	"lawler":            {lawler.Solve, false},
	"howard":            {howard.Solve, false},
	"valiter":           {valiter.Solve, false},
	"burns":             {burns.Solve, false},
}

// Dialects returns the names of every algorithm dialect Solve accepts, in
// a stable order.
func Dialects() []string {
	return []string{
		"karp-orlin", "young-tarjan-orlin", "tarjan", "szymanski",
		"lawler", "howard", "valiter", "burns",
	}
}

// Solve computes the minimum cycle ratio of g using the named dialect. It
// returns +Inf if g is acyclic. stats, if non-nil, accumulates iteration
// counts across every component and every solver call.
func Solve(g *graph.Graph, dialectName string, stats *ratio.Stats) (float64, error) {
	return solve(g, dialectName, false, stats)
}

// SolveMax computes the maximum cycle ratio of g using the named dialect.
// It returns -Inf if g is acyclic.
func SolveMax(g *graph.Graph, dialectName string, stats *ratio.Stats) (float64, error) {
	lambda, err := solve(g, dialectName, true, stats)
	if err != nil {
		return 0, err
	}
	return -lambda, nil
}

func solve(g *graph.Graph, dialectName string, negate bool, stats *ratio.Stats) (float64, error) {
	d, ok := dialects[dialectName]
	if !ok {
		return 0, cyclerr.New(cyclerr.CodeConfig, "unknown algorithm dialect: "+dialectName)
	}

	work := g
	if negate {
		work = negateWeights(g)
	}

	r := scc.Decompose(work)
	if scc.IsAcyclic(work, r) {
		return math.Inf(1), nil
	}

	plusInfinity := float64(work.TotalWeight())
	cg := component.Build(work, r, d.addSource)

	lambdaBest := math.Inf(1)
	for _, c := range cg.Components {
		if c.Sub.NumEdges() == 0 {
			continue
		}
		lambda, err := d.solve(c.Sub, plusInfinity, lambdaBest, stats)
		if err != nil {
			return 0, err
		}
		if lambda < lambdaBest {
			lambdaBest = lambda
		}
	}

	return lambdaBest, nil
}

// negateWeights returns a copy of g with every edge weight negated and
// every transit time preserved, used to compute a maximum cycle ratio as
// the negation of a minimum cycle ratio (§4.8).
func negateWeights(g *graph.Graph) *graph.Graph {
	b := graph.NewBuilder(g.NumNodes(), g.MeanOnly())
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		b.AddEdge(u, v, -g.Weight(e), g.Transit(e))
	}
	return b.Build()
}

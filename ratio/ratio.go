// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratio defines the shared contract every cycle-ratio solver
// dialect implements (Karp-Orlin, Young-Tarjan-Orlin, the three Lawler
// bisection oracles, Howard's and value iteration, and Burns's method),
// plus the load-bearing numerical tolerances and the optional statistics
// sink threaded through them all.
package ratio

import "github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"

// Numerical tolerances load-bearing throughout the bisection and
// critical-edge solvers. Do not change without re-verifying convergence.
const (
	// Epsilon is the half-interval tolerance for binary search on lambda.
	Epsilon = 0.01
	// Epsilon2 is half of Epsilon, used to decide whether a tightened
	// bound is already close enough to stop.
	Epsilon2 = Epsilon / 2
	// SmallEpsilon is the tolerance for classifying an edge as critical in
	// Burns's method.
	SmallEpsilon = 0.001
)

// Stats is an optional, caller-owned statistics sink. A nil *Stats is
// always safe to pass; solvers only record into it when non-nil, so there
// is no ambient global counter state (§9 "counters as ambient state").
type Stats struct {
	Iterations int
	NodesSeen  int
	EdgesSeen  int
}

func (s *Stats) addIteration() {
	if s != nil {
		s.Iterations++
	}
}

func (s *Stats) addNode() {
	if s != nil {
		s.NodesSeen++
	}
}

func (s *Stats) addEdge() {
	if s != nil {
		s.EdgesSeen++
	}
}

// AddIteration increments the iteration counter if s is non-nil.
func AddIteration(s *Stats) { s.addIteration() }

// AddNode increments the nodes-seen counter if s is non-nil.
func AddNode(s *Stats) { s.addNode() }

// AddEdge increments the edges-seen counter if s is non-nil.
func AddEdge(s *Stats) { s.addEdge() }

// Solver computes the minimum cycle ratio of one strongly connected
// sub-graph g, given plusInfinity (a value no real cycle ratio in the
// whole input graph can exceed in magnitude, conventionally
// graph.Graph.TotalWeight of the whole input graph) and lambdaSoFar (the
// best bound found by sibling
// components so far, used purely for pruning). It returns +Inf if g is
// acyclic.
type Solver func(g *graph.Graph, plusInfinity float64, lambdaSoFar float64, stats *Stats) (float64, error)

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package howard

import (
	"math"
	"testing"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, n int, edges [][4]int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(n, false)
	for _, e := range edges {
		_, err := b.AddEdge(e[0], e[1], e[2], e[3])
		require.NoError(t, err)
	}
	return b.Build()
}

func TestSolveSingleThreeCycle(t *testing.T) {
	g := mustBuild(t, 3, [][4]int{{0, 1, 1, 1}, {1, 2, 2, 1}, {2, 0, 3, 1}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, lambda, 1e-6)
}

func TestSolveSelfLoop(t *testing.T) {
	g := mustBuild(t, 1, [][4]int{{0, 0, 5, 1}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, lambda, 1e-6)
}

func TestSolveTransitWeightedCycle(t *testing.T) {
	g := mustBuild(t, 2, [][4]int{{0, 1, 2, 2}, {1, 0, 2, 2}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lambda, 1e-6)
}

func TestSolvePicksMinimumOfTwoCyclesSharingANode(t *testing.T) {
	// 0->1->0 ratio 1; 0->2->0 ratio 10. Node 0's initial policy edge is
	// whichever of the two outgoing edges has smaller weight (0->1), so the
	// first policy graph already holds the ratio-1 cycle and relaxation
	// finds nothing better.
	g := mustBuild(t, 3, [][4]int{{0, 1, 1, 1}, {1, 0, 1, 1}, {0, 2, 10, 1}, {2, 0, 10, 1}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lambda, 1e-6)
}

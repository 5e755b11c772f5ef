// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package szymanski

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
	assert.InDelta(t, 2.0, lambda, 0.02)
}

func TestSolveSelfLoop(t *testing.T) {
	g := mustBuild(t, 1, [][4]int{{0, 0, 5, 1}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, lambda, 0.02)
}

func TestSolveTransitWeightedCycle(t *testing.T) {
	g := mustBuild(t, 2, [][4]int{{0, 1, 2, 2}, {1, 0, 2, 2}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lambda, 0.02)
}

func TestSolveNegativeRatioCycleWithPositiveCounterpart(t *testing.T) {
	g := mustBuild(t, 3, [][4]int{{0, 1, -2, 1}, {1, 0, 0, 1}, {0, 2, 5, 1}, {2, 0, 5, 1}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, lambda, 0.02)
}

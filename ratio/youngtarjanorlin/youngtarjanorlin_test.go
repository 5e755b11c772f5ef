// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package youngtarjanorlin

import (
	"math"
	"testing"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuildWithSource(t *testing.T, nReal int, edges [][3]int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(nReal+1, false)
	for _, e := range edges {
		_, err := b.AddEdge(e[0]+1, e[1]+1, e[2], 1)
		require.NoError(t, err)
	}
	return b.Build()
}

func TestSolveSingleThreeCycle(t *testing.T) {
	g := mustBuildWithSource(t, 3, [][3]int{{0, 1, 1}, {1, 2, 2}, {2, 0, 3}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, lambda, 1e-9)
}

func TestSolveSelfLoop(t *testing.T) {
	g := mustBuildWithSource(t, 1, [][3]int{{0, 0, 5}})
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, lambda, 1e-9)
}

func TestSolveAgreesWithKarpOrlinOnTransitWeightedCycle(t *testing.T) {
	b := graph.NewBuilder(3, false)
	_, err := b.AddEdge(1, 2, 2, 2)
	require.NoError(t, err)
	_, err = b.AddEdge(2, 1, 2, 2)
	require.NoError(t, err)
	g := b.Build()
	lambda, err := Solve(g, math.Inf(1), math.Inf(1), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lambda, 1e-9)
}

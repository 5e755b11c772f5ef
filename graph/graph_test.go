// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build3Cycle(t *testing.T) *Graph {
	t.Helper()
	b := NewBuilder(3, false)
	_, err := b.AddEdge(0, 1, 1, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2, 2, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(2, 0, 3, 1)
	require.NoError(t, err)
	return b.Build()
}

func TestBuildAdjacencyCoherence(t *testing.T) {
	g := build3Cycle(t)
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())

	for v := 0; v < g.NumNodes(); v++ {
		assert.Equal(t, 1, g.OutDegree(v))
		assert.Equal(t, 1, g.InDegree(v))
	}

	sumIn, sumOut := 0, 0
	for v := 0; v < g.NumNodes(); v++ {
		sumIn += g.InDegree(v)
		sumOut += g.OutDegree(v)
	}
	assert.Equal(t, g.NumEdges(), sumIn)
	assert.Equal(t, g.NumEdges(), sumOut)

	for v := 0; v < g.NumNodes(); v++ {
		for i := 0; i < g.OutDegree(v); i++ {
			eid, neighbor, w, tt := g.OutEdge(v, i)
			assert.Equal(t, v, g.Source(eid))
			assert.Equal(t, neighbor, g.Target(eid))
			assert.Equal(t, w, g.Weight(eid))
			assert.Equal(t, tt, g.Transit(eid))
		}
	}
}

func TestMeanOnlyFixesTransit(t *testing.T) {
	b := NewBuilder(2, true)
	id, err := b.AddEdge(0, 1, 7, 99)
	require.NoError(t, err)
	g := b.Build()
	assert.Equal(t, 1, g.Transit(id))
	assert.True(t, g.MeanOnly())
}

func TestSelfLoop(t *testing.T) {
	b := NewBuilder(1, false)
	_, err := b.AddEdge(0, 0, 5, 1)
	require.NoError(t, err)
	g := b.Build()
	assert.True(t, g.HasSelfLoop())
}

func TestOutOfRangeEdgeRejected(t *testing.T) {
	b := NewBuilder(2, false)
	_, err := b.AddEdge(0, 5, 1, 1)
	assert.Error(t, err)
}

func TestNonPositiveTransitRejectedUnlessMeanOnly(t *testing.T) {
	b := NewBuilder(2, false)
	_, err := b.AddEdge(0, 1, 1, 0)
	assert.Error(t, err)

	bm := NewBuilder(2, true)
	_, err = bm.AddEdge(0, 1, 1, 0)
	assert.NoError(t, err)
}

func TestTotalWeight(t *testing.T) {
	g := build3Cycle(t)
	assert.Equal(t, 8, g.TotalWeight()) // 2 + |1| + |2| + |3|
}

func TestTotalWeightUsesAbsoluteValue(t *testing.T) {
	b := NewBuilder(2, false)
	_, err := b.AddEdge(0, 1, -5, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 0, 3, 1)
	require.NoError(t, err)
	g := b.Build()
	assert.Equal(t, 10, g.TotalWeight()) // 2 + 5 + 3
}

type edgeSnapshot struct {
	Edge     int
	Neighbor int
	Weight   int
	Transit  int
}

func TestOutEdgeSnapshotMatchesExpected(t *testing.T) {
	g := build3Cycle(t)

	var got []edgeSnapshot
	for v := 0; v < g.NumNodes(); v++ {
		for i := 0; i < g.OutDegree(v); i++ {
			eid, neighbor, w, tt := g.OutEdge(v, i)
			got = append(got, edgeSnapshot{eid, neighbor, w, tt})
		}
	}

	want := []edgeSnapshot{
		{0, 1, 1, 1},
		{1, 2, 2, 1},
		{2, 0, 3, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OutEdge() sequence mismatch (-want +got):\n%s", diff)
	}
}

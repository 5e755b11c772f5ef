// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParsesProblemAndArcLines(t *testing.T) {
	input := `c a leading comment
t another comment style
n yet another
p test 3 3
a 1 2 1 1
a 2 3 2 1
a 3 1 3 1
`
	g, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 0, g.Source(0))
	assert.Equal(t, 1, g.Target(0))
	assert.Equal(t, 1, g.Weight(0))
	assert.Equal(t, 1, g.Transit(0))
}

func TestReadRejectsMissingProblemLine(t *testing.T) {
	_, err := Read(strings.NewReader("a 1 2 1 1\n"))
	require.Error(t, err)
	var ce *cyclerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, cyclerr.CodeMalformedInput, ce.Code)
}

func TestReadRejectsArcCountMismatch(t *testing.T) {
	input := "p test 2 2\na 1 2 1 1\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
}

func TestReadRejectsOutOfRangeNode(t *testing.T) {
	input := "p test 2 1\na 1 5 1 1\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	g, err := Read(strings.NewReader("p test 3 3\na 1 2 1 1\na 2 3 2 1\na 3 1 3 1\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, "roundtrip"))

	g2, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NumNodes(), g2.NumNodes())
	assert.Equal(t, g.NumEdges(), g2.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		assert.Equal(t, g.Source(e), g2.Source(e))
		assert.Equal(t, g.Target(e), g2.Target(e))
		assert.Equal(t, g.Weight(e), g2.Weight(e))
		assert.Equal(t, g.Transit(e), g2.Transit(e))
	}
}

func TestWriteUsesOneBasedIDs(t *testing.T) {
	g, err := Read(strings.NewReader("p test 2 1\na 1 2 7 3\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, "onebased"))
	assert.Contains(t, buf.String(), "a 1 2 7 3")
	assert.Contains(t, buf.String(), "p onebased 2 1")
}

func TestGeneratorUniformStaysInRange(t *testing.T) {
	gen := NewGenerator(42)
	for i := 0; i < 200; i++ {
		v := gen.Uniform(3, 9)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 9)
	}
}

func TestGeneratorExponentialIsNonNegative(t *testing.T) {
	gen := NewGenerator(7)
	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, gen.Exponential(10), 0)
	}
}

func TestGeneratorIsDeterministicForAFixedSeed(t *testing.T) {
	a := NewGenerator(123)
	b := NewGenerator(123)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Uniform(0, 1000), b.Uniform(0, 1000))
	}
}

func TestGenerateProducesStronglyConnectedHamiltonianCore(t *testing.T) {
	gen := NewGenerator(1)
	g, err := Generate(gen, UniformDist, 5, 8, 1, 10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 8, g.NumEdges())

	// Every node must have at least one outgoing and one incoming edge,
	// which the Hamiltonian-cycle-first construction guarantees.
	for v := 0; v < g.NumNodes(); v++ {
		assert.Positive(t, g.OutDegree(v))
		assert.Positive(t, g.InDegree(v))
	}
}

func TestGenerateRejectsFewerEdgesThanNodes(t *testing.T) {
	gen := NewGenerator(1)
	_, err := Generate(gen, UniformDist, 5, 3, 1, 1, 1, 1)
	require.Error(t, err)
}

func TestRegenerateWeightsKeepsTopology(t *testing.T) {
	g, err := Read(strings.NewReader("p test 3 3\na 1 2 1 1\na 2 3 2 1\na 3 1 3 1\n"))
	require.NoError(t, err)

	gen := NewGenerator(5)
	g2 := RegenerateWeights(g, gen, UniformDist, 10, 20, 1, 1, 0)
	require.Equal(t, g.NumNodes(), g2.NumNodes())
	require.Equal(t, g.NumEdges(), g2.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		assert.Equal(t, g.Source(e), g2.Source(e))
		assert.Equal(t, g.Target(e), g2.Target(e))
		assert.GreaterOrEqual(t, g2.Weight(e), 10)
		assert.LessOrEqual(t, g2.Weight(e), 20)
	}
}

func TestGenerateNeverAddsSelfLoopsOrDuplicateArcs(t *testing.T) {
	gen := NewGenerator(9)
	g, err := Generate(gen, UniformDist, 6, 20, 1, 5, 1, 1)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Source(e), g.Target(e)
		assert.NotEqual(t, u, v)
		key := [2]int{u, v}
		assert.False(t, seen[key], "duplicate arc %v", key)
		seen[key] = true
	}
}

// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dimacs reads and writes the DIMACS-like graph format used by
// this module's command line tooling, and generates random test graphs
// in the same style as the historical graph generator: a Hamiltonian
// cycle over all nodes, topped up with random extra edges avoiding
// self-loops and duplicates.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
)

// Read parses a DIMACS-like stream into a Graph. Lines beginning with
// 'c', 't', or 'n' are skipped as comments or auxiliary lines. The
// problem line is "p <name> <n> <m>"; each of the following m arc lines
// is "a <u> <v> <w> <t>" with 1-based node ids, converted to 0-based on
// return.
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	var n, m int
	foundProblem := false
	var b *graph.Builder
	edgesRead := 0

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == 'c' || line[0] == 't' || line[0] == 'n' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if foundProblem {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "duplicate problem line")
			}
			if len(fields) < 4 {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "malformed problem line")
			}
			var err error
			n, err = strconv.Atoi(fields[2])
			if err != nil || n <= 0 {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "node count must be positive")
			}
			m, err = strconv.Atoi(fields[3])
			if err != nil || m < 0 {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "edge count must be non-negative")
			}
			foundProblem = true
			b = graph.NewBuilder(n, false)
		case "a":
			if !foundProblem {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "arc line before problem line")
			}
			if len(fields) < 5 {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "malformed arc line")
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			w, err3 := strconv.Atoi(fields[3])
			tt, err4 := strconv.Atoi(fields[4])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "malformed arc line")
			}
			if u < 1 || u > n || v < 1 || v > n {
				return nil, cyclerr.New(cyclerr.CodeMalformedInput, "arc endpoint out of range")
			}
			if _, err := b.AddEdge(u-1, v-1, w, tt); err != nil {
				return nil, cyclerr.Wrap(cyclerr.CodeMalformedInput, "invalid arc", err)
			}
			edgesRead++
		default:
			return nil, cyclerr.New(cyclerr.CodeMalformedInput, "unrecognized line descriptor: "+fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, cyclerr.Wrap(cyclerr.CodeMalformedInput, "reading input", err)
	}
	if !foundProblem {
		return nil, cyclerr.New(cyclerr.CodeMalformedInput, "missing problem line")
	}
	if edgesRead != m {
		return nil, cyclerr.New(cyclerr.CodeMalformedInput, "arc count does not match problem line")
	}
	return b.Build(), nil
}

// Write renders g in the DIMACS-like format Read accepts, using name as
// the problem name.
func Write(w io.Writer, g *graph.Graph, name string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p %s %d %d\n", name, g.NumNodes(), g.NumEdges()); err != nil {
		return err
	}
	for e := 0; e < g.NumEdges(); e++ {
		if _, err := fmt.Fprintf(bw, "a %d %d %d %d\n", g.Source(e)+1, g.Target(e)+1, g.Weight(e), g.Transit(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Generator produces random integers from a seeded PRNG using one of
// three distributions, matching the historical generator's techniques.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded deterministically from seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a uniformly distributed integer in [min, max].
func (g *Generator) Uniform(min, max int) int {
	return min + g.rng.IntN(max-min+1)
}

// Exponential returns an exponentially distributed integer with the
// given mean, via inverse-transform sampling.
func (g *Generator) Exponential(mean int) int {
	var u float64
	for u <= 0 {
		u = g.rng.Float64()
	}
	return int(float64(mean) * -math.Log(u))
}

// Normal returns an approximately normally distributed integer with the
// given mean and standard deviation, via the classic sum-of-12-uniforms
// approximation to a standard normal.
func (g *Generator) Normal(mean, sdev int) int {
	sum := 0.0
	for i := 0; i < 12; i++ {
		sum += g.rng.Float64()
	}
	return mean + int(float64(sdev)*(sum-6.0))
}

// Distribution names one of Generator's sampling methods; the cyclratio
// command picks one from its --dist flag.
type Distribution func(g *Generator, min, max int) int

// UniformDist, ExponentialDist, and NormalDist adapt Generator's
// (mean, bound) samplers to the common two-argument Distribution shape
// Generate needs: ExponentialDist and NormalDist both treat min as the
// mean and max as the spread parameter (ignored for ExponentialDist).
func UniformDist(g *Generator, min, max int) int { return g.Uniform(min, max) }

func ExponentialDist(g *Generator, mean, _ int) int { return g.Exponential(mean) }

func NormalDist(g *Generator, mean, sdev int) int { return g.Normal(mean, sdev) }

// Generate synthesizes a random directed graph of n nodes and m edges: a
// Hamiltonian cycle over all n nodes first (guaranteeing strong
// connectivity), then m-n additional random edges avoiding self-loops
// and duplicates of an existing edge from the same source. Edge weights
// are drawn from dist over [w1, w2], transit times over [t1, t2].
func Generate(gen *Generator, dist Distribution, n, m, w1, w2, t1, t2 int) (*graph.Graph, error) {
	if n <= 0 {
		return nil, cyclerr.New(cyclerr.CodeMalformedInput, "node count must be positive")
	}
	if m < n {
		return nil, cyclerr.New(cyclerr.CodeMalformedInput, "edge count must be at least node count to cover a Hamiltonian cycle")
	}

	b := graph.NewBuilder(n, false)
	adj := make([]map[int]bool, n)
	for v := range adj {
		adj[v] = make(map[int]bool)
	}

	addEdge := func(u, v int) error {
		w := dist(gen, w1, w2)
		t := dist(gen, t1, t2)
		if _, err := b.AddEdge(u, v, w, t); err != nil {
			return err
		}
		adj[u][v] = true
		return nil
	}

	for u := 0; u < n-1; u++ {
		if err := addEdge(u, u+1); err != nil {
			return nil, err
		}
	}
	if err := addEdge(n-1, 0); err != nil {
		return nil, err
	}

	for e := n; e < m; e++ {
		var u, v int
		for {
			u = gen.Uniform(0, n-1)
			v = gen.Uniform(0, n-1)
			if u != v && !adj[u][v] {
				break
			}
		}
		if err := addEdge(u, v); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// RegenerateWeights rebuilds g with the same topology but resamples
// every edge's weight (shifted down by offset) and transit time from
// dist, leaving node count and edge endpoints untouched. This backs the
// "keep the graph, redraw the attributes" run mode.
func RegenerateWeights(g *graph.Graph, gen *Generator, dist Distribution, w1, w2, t1, t2, offset int) *graph.Graph {
	b := graph.NewBuilder(g.NumNodes(), g.MeanOnly())
	for e := 0; e < g.NumEdges(); e++ {
		w := dist(gen, w1, w2) - offset
		t := dist(gen, t1, t2)
		b.AddEdge(g.Source(e), g.Target(e), w, t)
	}
	return b.Build()
}

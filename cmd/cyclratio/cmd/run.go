// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cliconfig"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclratio"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/dimacs"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/graph"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/ratio"
)

func distOf(cfg *cliconfig.Config) dimacs.Distribution {
	switch cliconfig.Dist(cfg.Dist) {
	case cliconfig.DistNormal:
		return dimacs.NormalDist
	case cliconfig.DistExponential:
		return dimacs.ExponentialDist
	default:
		return dimacs.UniformDist
	}
}

func run(cfg *cliconfig.Config) error {
	seed := cfg.Seed
	if seed == -1 {
		seed = int64(rand.Uint64N(1 << 31))
	}
	logger.Infof("seed= %d", seed)
	gen := dimacs.NewGenerator(uint64(seed))
	dist := distOf(cfg)

	var g *graph.Graph
	var err error

	switch cliconfig.Mode(cfg.Mode) {
	case cliconfig.ModeRead, cliconfig.ModeReadRegenerate:
		start := time.Now()
		f, ferr := os.Open(cfg.InputFile)
		if ferr != nil {
			return ferr
		}
		g, err = dimacs.Read(f)
		f.Close()
		if err != nil {
			return err
		}
		logger.Infof("time to read input graph= %.2f", time.Since(start).Seconds())
		if cliconfig.Mode(cfg.Mode) == cliconfig.ModeReadRegenerate {
			g = dimacs.RegenerateWeights(g, gen, dist, cfg.WeightMin, cfg.WeightMax, cfg.TransitMin, cfg.TransitMax, cfg.Offset)
		}
	case cliconfig.ModeGenerate:
		start := time.Now()
		g, err = dimacs.Generate(gen, dist, cfg.Nodes, cfg.Edges, cfg.WeightMin, cfg.WeightMax, cfg.TransitMin, cfg.TransitMax)
		if err != nil {
			return err
		}
		logger.Infof("time to generate input graph= %.2f", time.Since(start).Seconds())
	}

	if cfg.DumpFile != "" {
		df, ferr := os.Create(cfg.DumpFile)
		if ferr != nil {
			return ferr
		}
		name := fmt.Sprintf("generated-%d", seed)
		if werr := dimacs.Write(df, g, name); werr != nil {
			df.Close()
			return werr
		}
		df.Close()
	}

	for runNo := 0; runNo < cfg.Runs; runNo++ {
		logger.Infof("run_no= %d", runNo)

		if runNo > 0 && cliconfig.Mode(cfg.Mode) != cliconfig.ModeRead {
			seed += int64(runNo)
			gen = dimacs.NewGenerator(uint64(seed))
			g = dimacs.RegenerateWeights(g, gen, dist, cfg.WeightMin, cfg.WeightMax, cfg.TransitMin, cfg.TransitMax, cfg.Offset)
		}

		var stats ratio.Stats
		start := time.Now()
		var lambda float64
		if cfg.Maximize {
			lambda, err = cyclratio.SolveMax(g, cfg.Dialect, &stats)
		} else {
			lambda, err = cyclratio.Solve(g, cfg.Dialect, &stats)
		}
		elapsed := time.Since(start).Seconds()
		if err != nil {
			return err
		}

		label := "min_lambda"
		if cfg.Maximize {
			label = "max_lambda"
		}
		fmt.Printf("final %s= %10.2f time= %10.2f\n", label, lambda, elapsed)
		logger.Debugf("iterations=%d nodes_seen=%d edges_seen=%d", stats.Iterations, stats.NodesSeen, stats.EdgesSeen)
	}

	return nil
}

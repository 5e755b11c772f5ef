// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cliconfig"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclog"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclratio"
)

var (
	cfgFile     string
	modeFlag    string
	dialectFlag string
	maxFlag     bool
	inputFlag   string
	dumpFlag    string
	runsFlag    int
	offsetFlag  int
	distFlag    string
	nodesFlag   int
	edgesFlag   int
	w1Flag      int
	w2Flag      int
	t1Flag      int
	t2Flag      int
	seedFlag    int64
	logLevel    string

	logger *cyclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cyclratio [input-file]",
	Short: "Compute the minimum or maximum cycle ratio of a directed weighted graph",
	Long: `cyclratio reads a DIMACS-like directed integer-weighted graph, or
generates a random one, and reports its optimum cycle ratio under one of
eight solver dialects: karp-orlin, young-tarjan-orlin, tarjan, szymanski,
lawler, howard, valiter, or burns.`,
	Example: `  cyclratio graph.dimacs --dialect howard
  cyclratio --mode generate --nodes 1000 --edges 5000 --dialect burns --maximize
  cyclratio graph.dimacs --mode regenerate --dist normal --runs 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

// Execute runs the root command. A flag-parsing error prints usage and
// exits with status 0; any other failure exits with status 1.
func Execute() {
	flagErr := false
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		flagErr = true
		return err
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if flagErr {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", "info", "log level: debug, info, warn, error")

	rootCmd.Flags().StringVarP(&modeFlag, "mode", "m", "read", "input mode: read, regenerate, generate")
	rootCmd.Flags().StringVar(&dialectFlag, "dialect", "tarjan", fmt.Sprintf("solver dialect: %v", cyclratio.Dialects()))
	rootCmd.Flags().BoolVar(&maxFlag, "maximize", false, "compute the maximum cycle ratio instead of the minimum")
	rootCmd.Flags().StringVarP(&inputFlag, "input_file", "i", "", "input graph file (required unless --mode generate)")
	rootCmd.Flags().StringVarP(&dumpFlag, "dump_file", "f", "", "write the (possibly generated or regenerated) graph here")
	rootCmd.Flags().IntVarP(&runsFlag, "runs", "n", 1, "number of repeated runs")
	rootCmd.Flags().IntVarP(&offsetFlag, "offset", "o", 1, "amount subtracted from every sampled weight on regeneration")
	rootCmd.Flags().StringVarP(&distFlag, "dist", "d", "uniform", "sampling distribution: uniform, normal, exponential")
	rootCmd.Flags().IntVar(&nodesFlag, "nodes", 0, "node count (generate mode)")
	rootCmd.Flags().IntVar(&edgesFlag, "edges", 0, "edge count (generate mode)")
	rootCmd.Flags().IntVar(&w1Flag, "weight_min", 1, "minimum sampled weight")
	rootCmd.Flags().IntVar(&w2Flag, "weight_max", 300, "maximum sampled weight")
	rootCmd.Flags().IntVar(&t1Flag, "transit_min", 1, "minimum sampled transit time")
	rootCmd.Flags().IntVar(&t2Flag, "transit_max", 10, "maximum sampled transit time")
	rootCmd.Flags().Int64VarP(&seedFlag, "seed", "s", -1, "PRNG seed, or -1 to draw a random one")
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && inputFlag == "" {
		inputFlag = args[0]
		cmd.Flags().Set("input_file", inputFlag)
	}
	cmd.Flags().Set("mode", modeNumber(modeFlag))
	cmd.Flags().Set("dist", distNumber(distFlag))

	cfg, err := cliconfig.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger = cyclog.New(os.Stderr, cyclog.ParseLevel(cfg.LogLevel))
	return run(cfg)
}

func modeNumber(s string) string {
	switch s {
	case "regenerate":
		return "1"
	case "generate":
		return "2"
	default:
		return "0"
	}
}

func distNumber(s string) string {
	switch s {
	case "normal":
		return "1"
	case "exponential":
		return "2"
	default:
		return "0"
	}
}

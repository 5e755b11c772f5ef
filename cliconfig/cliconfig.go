// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliconfig loads and validates the settings behind the
// cyclratio command line tool: which input graph to read or generate,
// which dialect to run it through, and how many repeated runs to
// perform. Precedence, lowest to highest, is defaults, a config file,
// CYCLRATIO_-prefixed environment variables, and command line flags.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclerr"
	"github.com/alidasdan/optimum-cycle-ratio-algorithms/cyclratio"
)

// Mode selects where the input graph comes from.
type Mode int

const (
	// ModeRead parses a graph from InputFile as-is.
	ModeRead Mode = iota
	// ModeReadRegenerate parses a graph's topology from InputFile but
	// resamples every edge weight and transit time under Dist.
	ModeReadRegenerate
	// ModeGenerate synthesizes an entire random graph under Dist.
	ModeGenerate
)

// Dist selects the probability distribution random weights and transit
// times are drawn from.
type Dist int

const (
	DistUniform Dist = iota
	DistNormal
	DistExponential
)

// Config holds every setting needed to run the cyclratio pipeline once
// or repeatedly.
type Config struct {
	Mode          int    `mapstructure:"mode"`
	Dialect       string `mapstructure:"dialect"`
	Maximize      bool   `mapstructure:"maximize"`
	InputFile     string `mapstructure:"input_file"`
	DumpFile      string `mapstructure:"dump_file"`
	Runs          int    `mapstructure:"runs"`
	Offset        int    `mapstructure:"offset"`
	Dist          int    `mapstructure:"dist"`
	Nodes         int    `mapstructure:"nodes"`
	Edges         int    `mapstructure:"edges"`
	WeightMin     int    `mapstructure:"weight_min"`
	WeightMax     int    `mapstructure:"weight_max"`
	TransitMin    int    `mapstructure:"transit_min"`
	TransitMax    int    `mapstructure:"transit_max"`
	Seed          int64  `mapstructure:"seed"`
	LogLevel      string `mapstructure:"log_level"`
}

// Load builds a Config from defaults, an optional config file at
// configPath (skipped if configPath is empty; a non-empty path that
// cannot be read is an error), environment
// variables prefixed CYCLRATIO_, and flags, in increasing precedence,
// then validates the result.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, cyclerr.Wrap(cyclerr.CodeConfig, "reading config file", err)
			}
		}
	}

	v.SetEnvPrefix("CYCLRATIO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, cyclerr.Wrap(cyclerr.CodeConfig, "binding flags", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cyclerr.Wrap(cyclerr.CodeConfig, "decoding config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", int(ModeRead))
	v.SetDefault("dialect", "tarjan")
	v.SetDefault("maximize", false)
	v.SetDefault("input_file", "")
	v.SetDefault("dump_file", "")
	v.SetDefault("runs", 1)
	v.SetDefault("offset", 1)
	v.SetDefault("dist", int(DistUniform))
	v.SetDefault("nodes", 0)
	v.SetDefault("edges", 0)
	v.SetDefault("weight_min", 1)
	v.SetDefault("weight_max", 300)
	v.SetDefault("transit_min", 1)
	v.SetDefault("transit_max", 10)
	v.SetDefault("seed", int64(-1))
	v.SetDefault("log_level", "info")
}

// Validate enforces the constraints the historical command line parser
// enforced on its own flags.
func (c *Config) Validate() error {
	switch Mode(c.Mode) {
	case ModeRead, ModeReadRegenerate, ModeGenerate:
	default:
		return cyclerr.New(cyclerr.CodeConfig, fmt.Sprintf("unknown mode %d", c.Mode))
	}

	if Mode(c.Mode) != ModeGenerate && c.InputFile == "" {
		return cyclerr.New(cyclerr.CodeConfig, "input_file is required unless mode is generate")
	}

	found := false
	for _, name := range cyclratio.Dialects() {
		if name == c.Dialect {
			found = true
			break
		}
	}
	if !found {
		return cyclerr.New(cyclerr.CodeConfig, fmt.Sprintf("unknown dialect %q", c.Dialect))
	}

	if c.Runs < 1 {
		return cyclerr.New(cyclerr.CodeConfig, "runs must be a positive integer")
	}
	if c.Offset == 0 {
		return cyclerr.New(cyclerr.CodeConfig, "offset must be a non-zero integer")
	}

	switch Dist(c.Dist) {
	case DistUniform, DistNormal, DistExponential:
	default:
		return cyclerr.New(cyclerr.CodeConfig, fmt.Sprintf("unknown distribution %d", c.Dist))
	}

	if Mode(c.Mode) == ModeGenerate {
		if c.Nodes <= 0 {
			return cyclerr.New(cyclerr.CodeConfig, "nodes must be > 0 in generate mode")
		}
		if c.Nodes == 1 && c.Edges == 1 {
			return cyclerr.New(cyclerr.CodeConfig, "self-loops are not allowed: a single node cannot have one edge")
		}
		if c.Edges < c.Nodes {
			return cyclerr.New(cyclerr.CodeConfig, "edges must be >= nodes")
		}
	}

	if c.Seed != -1 && c.Seed <= 0 {
		return cyclerr.New(cyclerr.CodeConfig, "seed must be a positive integer, or -1 to request a random one")
	}

	return nil
}

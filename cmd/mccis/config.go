package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mccis"
	"github.com/katalvlaran/mccis/builder"
	"github.com/katalvlaran/mccis/clique"
)

// Config is the full CLI configuration. Precedence, lowest first:
// built-in defaults, the --config YAML file, explicitly set flags.
type Config struct {
	Criterion       string        `yaml:"criterion"`
	Approx          bool          `yaml:"approx"`
	Timeout         time.Duration `yaml:"timeout"`
	NodeLimit       int64         `yaml:"node_limit"`
	Workers         int           `yaml:"workers"`
	MaxProductOrder int           `yaml:"max_product_order"`
	LogLevel        string        `yaml:"log_level"`
	MetricsFile     string        `yaml:"metrics_file"`

	Output string `yaml:"output"`
	DotDir string `yaml:"dot_dir"`
	Verify bool   `yaml:"verify"`

	Bench BenchConfig `yaml:"bench"`
}

// BenchConfig drives the bench subcommand.
type BenchConfig struct {
	Kinds      []string `yaml:"kinds"`
	Sizes      []int    `yaml:"sizes"`
	Density    float64  `yaml:"density"`
	Seed       int64    `yaml:"seed"`
	Strategies []string `yaml:"strategies"`
	Criteria   []string `yaml:"criteria"`
	OutDir     string   `yaml:"out_dir"`
}

func defaultConfig() Config {
	return Config{
		Criterion: clique.TagVertices,
		LogLevel:  "info",
		Bench: BenchConfig{
			Kinds:      []string{"path", "tree", "cycle", "complete", "bipartite"},
			Sizes:      []int{1, 2, 3, 4, 5, 6, 7, 8},
			Density:    builder.DefaultEdgeProbability,
			Seed:       1,
			Strategies: []string{mccis.StrategyExact, mccis.StrategyApprox},
			Criteria:   []string{clique.TagVertices, clique.TagVerticesAndEdges},
			OutDir:     "results",
		},
	}
}

// loadConfigFile overlays the YAML file at path onto cfg. Unknown keys are errors.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// resolveConfig builds the effective configuration for cmd.
func resolveConfig(cmd *cobra.Command, flags *Config) (Config, error) {
	cfg := defaultConfig()
	fs := cmd.Flags()
	if path, _ := fs.GetString("config"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("criterion", func() { cfg.Criterion = flags.Criterion })
	set("approx", func() { cfg.Approx = flags.Approx })
	set("timeout", func() { cfg.Timeout = flags.Timeout })
	set("node-limit", func() { cfg.NodeLimit = flags.NodeLimit })
	set("workers", func() { cfg.Workers = flags.Workers })
	set("max-product-order", func() { cfg.MaxProductOrder = flags.MaxProductOrder })
	set("log-level", func() { cfg.LogLevel = flags.LogLevel })
	set("metrics-file", func() { cfg.MetricsFile = flags.MetricsFile })
	set("output", func() { cfg.Output = flags.Output })
	set("dot-dir", func() { cfg.DotDir = flags.DotDir })
	set("verify", func() { cfg.Verify = flags.Verify })
	set("kinds", func() { cfg.Bench.Kinds = flags.Bench.Kinds })
	set("sizes", func() { cfg.Bench.Sizes = flags.Bench.Sizes })
	set("density", func() { cfg.Bench.Density = flags.Bench.Density })
	set("seed", func() { cfg.Bench.Seed = flags.Bench.Seed })
	set("strategies", func() { cfg.Bench.Strategies = flags.Bench.Strategies })
	set("criteria", func() { cfg.Bench.Criteria = flags.Bench.Criteria })
	set("out-dir", func() { cfg.Bench.OutDir = flags.Bench.OutDir })

	return cfg, nil
}

// searchOptions maps the configuration onto facade options.
func (c Config) searchOptions() mccis.Options {
	return mccis.Options{
		Criterion:       c.Criterion,
		Exact:           !c.Approx,
		TimeLimit:       c.Timeout,
		NodeLimit:       c.NodeLimit,
		Workers:         c.Workers,
		MaxProductOrder: c.MaxProductOrder,
	}
}

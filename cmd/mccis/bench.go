package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mccis"
	"github.com/katalvlaran/mccis/builder"
	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
)

func newBenchCmd(flags *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the search over generated graph pairs",
		Long: `bench generates one graph pair per (kind pair, size), with kind pairs
taken as combinations with replacement, and times every strategy and
criterion on the same pairs. Each strategy/criterion run is saved as
<out-dir>/<strategy>-<criterion>.json mapping "kind1-kind2" to
{size: seconds}, timing each whole search including product construction.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runBench(cmd, cfg)
		},
	}

	def := defaultConfig().Bench
	f := cmd.Flags()
	f.StringSliceVar(&flags.Bench.Kinds, "kinds", def.Kinds, "graph kinds to pair")
	f.IntSliceVar(&flags.Bench.Sizes, "sizes", def.Sizes, "vertex counts, used for both graphs")
	f.Float64Var(&flags.Bench.Density, "density", def.Density, "edge probability of the random kind")
	f.Int64Var(&flags.Bench.Seed, "seed", def.Seed, "base seed for graph generation")
	f.StringSliceVar(&flags.Bench.Strategies, "strategies", def.Strategies, "exact and/or approx")
	f.StringSliceVar(&flags.Bench.Criteria, "criteria", def.Criteria, "size criteria")
	f.StringVar(&flags.Bench.OutDir, "out-dir", def.OutDir, "directory for the JSON results")

	return cmd
}

// benchCase is one generated graph pair.
type benchCase struct {
	size   int
	g1, g2 *core.Graph
}

// benchTimings maps "kind1-kind2" to size to seconds.
type benchTimings map[string]map[string]float64

func runBench(cmd *cobra.Command, cfg Config) error {
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	bc := cfg.Bench
	for _, k := range bc.Kinds {
		if _, err = builder.ParseKind(k); err != nil {
			return err
		}
	}
	for _, s := range bc.Strategies {
		if _, err = mccis.ParseStrategy(s); err != nil {
			return err
		}
	}
	for _, c := range bc.Criteria {
		if _, err = clique.ParseCriterion(c); err != nil {
			return err
		}
	}

	pairs, cases, err := benchCases(bc)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(bc.OutDir, 0o755); err != nil {
		return err
	}

	var metrics *searchMetrics
	if cfg.MetricsFile != "" {
		metrics = newSearchMetrics()
	}
	for _, strategy := range bc.Strategies {
		exact, _ := mccis.ParseStrategy(strategy)
		for _, crit := range bc.Criteria {
			opts := cfg.searchOptions()
			opts.Exact = exact
			opts.Criterion = crit

			out := make(benchTimings, len(pairs))
			for _, pair := range pairs {
				row := make(map[string]float64, len(cases[pair]))
				for _, c := range cases[pair] {
					res, took, err := measure(cmd.Context(), c, opts)
					if err != nil {
						return fmt.Errorf("bench %s %s (%s, n=%d): %w", strategy, crit, pair, c.size, err)
					}
					row[strconv.Itoa(c.size)] = roundSeconds(took)
					if metrics != nil {
						metrics.observe(res)
					}
					log.Debug("bench case",
						slog.String("strategy", strategy), slog.String("criterion", crit),
						slog.String("pair", pair), slog.Int("size", c.size),
						slog.Int("score", res.Score), slog.Bool("complete", res.Complete),
						slog.Duration("elapsed", took),
					)
				}
				out[pair] = row
			}

			path := filepath.Join(bc.OutDir, strategy+"-"+crit+".json")
			if err = writeJSON(path, out); err != nil {
				return err
			}
			log.Info("bench results saved", slog.String("file", path))
		}
	}
	if metrics != nil {
		return metrics.writeFile(cfg.MetricsFile)
	}

	return nil
}

// measure times a whole Find call, product construction included.
func measure(ctx context.Context, c benchCase, opts mccis.Options) (*mccis.Result, time.Duration, error) {
	start := time.Now()
	res, err := mccis.Find(ctx, c.g1, c.g2, opts)

	return res, time.Since(start), err
}

// roundSeconds reports d in seconds with millisecond precision.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

// benchCases generates the graphs once so every strategy and criterion
// times identical inputs.
func benchCases(bc BenchConfig) ([]string, map[string][]benchCase, error) {
	var pairs []string
	cases := make(map[string][]benchCase)
	for i, k1 := range bc.Kinds {
		for _, k2 := range bc.Kinds[i:] {
			pair := k1 + "-" + k2
			pairs = append(pairs, pair)
			for _, n := range bc.Sizes {
				seed := bc.Seed + int64(n)*2
				g1, err := builder.Generate(k1, n, bc.Density, builder.WithSeed(seed))
				if err != nil {
					return nil, nil, err
				}
				g2, err := builder.Generate(k2, n, bc.Density, builder.WithSeed(seed+1))
				if err != nil {
					return nil, nil, err
				}
				cases[pair] = append(cases[pair], benchCase{size: n, g1: g1, g2: g2})
			}
		}
	}

	return pairs, cases, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

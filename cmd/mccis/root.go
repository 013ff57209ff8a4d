package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mccis"
	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
	"github.com/katalvlaran/mccis/matrix"
	"github.com/katalvlaran/mccis/product"
	"github.com/katalvlaran/mccis/render"
)

func newRootCmd() *cobra.Command {
	flags := defaultConfig()
	cmd := &cobra.Command{
		Use:   "mccis [flags] G1.csv G2.csv",
		Short: "Find a maximum common connected induced subgraph of two graphs",
		Long: `mccis reads two undirected graphs as CSV adjacency matrices and prints
the matched vertex indices as two comma-separated rows: G1 then G2.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg, args[0], args[1])
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.StringVar(&flags.Criterion, "criterion", flags.Criterion,
		"size criterion: "+strings.Join(criterionTags(), "|"))
	pf.BoolVar(&flags.Approx, "approx", flags.Approx, "run the partitioned approximation instead of the exact search")
	pf.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "stop the search after this long (0 = no limit)")
	pf.Int64Var(&flags.NodeLimit, "node-limit", flags.NodeLimit, "stop after this many search-tree expansions (0 = no limit)")
	pf.IntVar(&flags.Workers, "workers", flags.Workers, "approximation worker goroutines (0 = GOMAXPROCS)")
	pf.IntVar(&flags.MaxProductOrder, "max-product-order", flags.MaxProductOrder, "reject inputs whose product exceeds this many vertices (0 = no limit)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug|info|warn|error")
	pf.StringVar(&flags.MetricsFile, "metrics-file", flags.MetricsFile, "write Prometheus metrics to this file")

	f := cmd.Flags()
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "result CSV path (stdout when empty)")
	f.StringVar(&flags.DotDir, "dot-dir", flags.DotDir, "write g1.dot, g2.dot and product.dot here")
	f.BoolVar(&flags.Verify, "verify", flags.Verify, "check the result independently before writing it")

	cmd.AddCommand(newBenchCmd(&flags))

	return cmd
}

func criterionTags() []string {
	var tags []string
	for _, c := range clique.Criteria() {
		tags = append(tags, c.Name())
	}
	return tags
}

// runSolve reads both matrices, searches, and writes the result and any
// requested artifacts.
func runSolve(cmd *cobra.Command, cfg Config, path1, path2 string) error {
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	g1, err := readGraph(path1)
	if err != nil {
		return err
	}
	g2, err := readGraph(path2)
	if err != nil {
		return err
	}
	log.Debug("graphs loaded",
		slog.String("g1", path1), slog.Int("g1_order", g1.Order()),
		slog.String("g2", path2), slog.Int("g2_order", g2.Order()),
	)

	opts := cfg.searchOptions()
	opts.Logger = log
	res, err := mccis.Find(cmd.Context(), g1, g2, opts)
	if err != nil {
		return err
	}
	if !res.Complete {
		log.Warn("search stopped early; result may not be optimal",
			slog.Duration("timeout", cfg.Timeout), slog.Int64("node_limit", cfg.NodeLimit))
	}
	if cfg.Verify {
		if err = mccis.Verify(g1, g2, res); err != nil {
			return err
		}
	}

	if err = writeResult(cmd.OutOrStdout(), cfg.Output, res); err != nil {
		return err
	}
	if cfg.DotDir != "" {
		if err = writeDOT(cfg.DotDir, g1, g2, res); err != nil {
			return err
		}
		log.Info("dot files written", slog.String("dir", cfg.DotDir))
	}
	if cfg.MetricsFile != "" {
		m := newSearchMetrics()
		m.observe(res)
		if err = m.writeFile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

func readGraph(path string) (*core.Graph, error) {
	m, err := matrix.ReadCSVFile(path)
	if err != nil {
		return nil, err
	}
	g, err := matrix.ToGraph(m, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func writeResult(stdout io.Writer, path string, res *mccis.Result) error {
	if path == "" {
		return res.WriteCSV(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = res.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeDOT(dir string, g1, g2 *core.Graph, res *mccis.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	h, err := product.Build(g1, g2)
	if err != nil {
		return err
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"g1.dot", func(w io.Writer) error { return render.WriteGraphDOT(w, g1, res.G1IDs(), "G1") }},
		{"g2.dot", func(w io.Writer) error { return render.WriteGraphDOT(w, g2, res.G2IDs(), "G2") }},
		{"product.dot", func(w io.Writer) error { return render.WriteProductDOT(w, h, res.Clique) }},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, file.name))
		if err != nil {
			return err
		}
		if err = file.write(f); err != nil {
			f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return err
		}
	}

	return nil
}

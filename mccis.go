package mccis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mccis/clique"
	"github.com/katalvlaran/mccis/core"
	"github.com/katalvlaran/mccis/matrix"
	"github.com/katalvlaran/mccis/product"
)

// Pair matches vertex G1 of the first graph with vertex G2 of the second.
type Pair struct {
	G1 string
	G2 string
}

// Result is a common connected induced subgraph found by Find.
type Result struct {
	// Pairs in the order the search selected them.
	Pairs []Pair

	// Clique holds the product-graph indices behind Pairs.
	Clique []int

	// Score is the value of Criterion for Pairs.
	Score int

	// Complete is false when a cutoff stopped the search early.
	Complete bool

	// Nodes counts search-tree expansions; Clusters is set by the
	// approximation only.
	Nodes    int64
	Clusters int

	Strategy  string
	Criterion string
	Elapsed   time.Duration
}

// Len returns the number of matched pairs.
func (r *Result) Len() int { return len(r.Pairs) }

// G1IDs returns the matched vertices of the first graph, in pair order.
func (r *Result) G1IDs() []string {
	out := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.G1
	}
	return out
}

// G2IDs returns the matched vertices of the second graph, in pair order.
func (r *Result) G2IDs() []string {
	out := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.G2
	}
	return out
}

// Find computes an MCCIS of g1 and g2.
//
// Steps:
//  1. Parse the criterion and check the search options (fails before any work).
//  2. Build the modular product.
//  3. Run Exact or Approx over it.
//  4. Map the clique back to vertex pairs.
//
// When ctx is canceled the best pairs found so far are returned together
// with the context error. Cutoffs (time or node limit) are not errors: the
// incumbent is returned with Complete=false.
//
// Errors: ErrGraphNil, clique.ErrUnknownCriterion, product.ErrProductTooLarge,
// clique.ErrOptionViolation, ctx.Err().
func Find(ctx context.Context, g1, g2 *core.Graph, opts Options) (*Result, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("Find: %w", ErrGraphNil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	crit, err := clique.ParseCriterion(opts.Criterion)
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	copts := append(opts.searchOptions(), clique.WithContext(ctx))
	if err = clique.CheckOptions(copts...); err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	log := opts.logger()

	h, err := product.Build(g1, g2, product.WithMaxOrder(opts.MaxProductOrder))
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	log.DebugContext(ctx, "modular product built",
		slog.Int("order", h.Order()),
		slog.Int("edges_a", h.CountEdges(product.EdgeA)),
		slog.Int("edges_b", h.CountEdges(product.EdgeB)),
	)

	start := time.Now()
	var res *clique.Result
	if opts.Exact {
		res, err = clique.Exact(h, crit, copts...)
	} else {
		res, err = clique.Approx(h, crit, copts...)
	}
	if res == nil {
		return nil, fmt.Errorf("Find: %w", err)
	}

	out := newResult(h, res, opts.Strategy(), crit.Name(), time.Since(start))
	log.InfoContext(ctx, "search finished",
		slog.String("strategy", out.Strategy),
		slog.String("criterion", out.Criterion),
		slog.Int("pairs", out.Len()),
		slog.Int("score", out.Score),
		slog.Bool("complete", out.Complete),
		slog.Int64("nodes", out.Nodes),
		slog.Int("clusters", out.Clusters),
		slog.Duration("elapsed", out.Elapsed),
	)
	if err != nil {
		return out, fmt.Errorf("Find: %w", err)
	}

	return out, nil
}

// FindMatrices validates two adjacency matrices, converts them with
// matrix.ToGraph (IDs "0".."n-1") and runs Find.
func FindMatrices(ctx context.Context, a1, a2 mat.Matrix, opts Options) (*Result, error) {
	g1, err := matrix.ToGraph(a1, nil)
	if err != nil {
		return nil, fmt.Errorf("FindMatrices: G1: %w", err)
	}
	g2, err := matrix.ToGraph(a2, nil)
	if err != nil {
		return nil, fmt.Errorf("FindMatrices: G2: %w", err)
	}

	return Find(ctx, g1, g2, opts)
}

func newResult(h *product.Graph, res *clique.Result, strategy, criterion string, elapsed time.Duration) *Result {
	out := &Result{
		Pairs:     make([]Pair, len(res.Clique.Vertices)),
		Clique:    append([]int(nil), res.Clique.Vertices...),
		Score:     res.Clique.Size,
		Complete:  res.Complete,
		Nodes:     res.Nodes,
		Clusters:  res.Clusters,
		Strategy:  strategy,
		Criterion: criterion,
		Elapsed:   elapsed,
	}
	for i, p := range res.Clique.Vertices {
		u, v := h.IDs(p)
		out.Pairs[i] = Pair{G1: u, G2: v}
	}

	return out
}

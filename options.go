package mccis

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mccis/clique"
)

// Search strategies.
const (
	StrategyExact  = "exact"
	StrategyApprox = "approx"
)

// Options configures Find.
type Options struct {
	// Criterion is a size-criterion tag, clique.TagVertices or
	// clique.TagVerticesAndEdges. Matching is exact and case-sensitive.
	Criterion string

	// Exact selects the exhaustive search; false runs the partitioned
	// approximation.
	Exact bool

	// TimeLimit, NodeLimit and Workers are passed to the clique search;
	// zero means no limit, no limit and GOMAXPROCS respectively.
	TimeLimit time.Duration
	NodeLimit int64
	Workers   int

	// MaxProductOrder rejects inputs whose product exceeds this many
	// vertices. Zero disables the guard.
	MaxProductOrder int

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns an exact vertex-count search with no cutoffs.
func DefaultOptions() Options {
	return Options{
		Criterion: clique.TagVertices,
		Exact:     true,
	}
}

// Strategy names the search Options selects.
func (o Options) Strategy() string {
	if o.Exact {
		return StrategyExact
	}
	return StrategyApprox
}

// ParseStrategy maps "exact"/"approx" to the Exact flag.
func ParseStrategy(s string) (exact bool, err error) {
	switch s {
	case StrategyExact:
		return true, nil
	case StrategyApprox:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) searchOptions() []clique.Option {
	return []clique.Option{
		clique.WithTimeLimit(o.TimeLimit),
		clique.WithNodeLimit(o.NodeLimit),
		clique.WithWorkers(o.Workers),
	}
}

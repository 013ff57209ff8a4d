package clique

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Sentinel errors for clique search.
var (
	// ErrGraphNil is returned if the product graph is nil.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrUnknownCriterion is returned for an unrecognized or nil size criterion.
	ErrUnknownCriterion = errors.New("clique: unknown size criterion")

	// ErrInvalidCandidate is returned when ExactWithin receives an index
	// outside the product graph or the same index twice.
	ErrInvalidCandidate = errors.New("clique: invalid candidate vertex")

	// ErrInvalidClusterSize is returned by Partition for k < 1.
	ErrInvalidClusterSize = errors.New("clique: cluster size must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Clique is a set of product vertices in selection order with its score.
type Clique struct {
	Vertices []int
	Size     int
}

// Len returns the number of vertices.
func (c Clique) Len() int { return len(c.Vertices) }

// Expand returns a new clique with v appended. The receiver is not modified
// and the two never share a backing array.
func (c Clique) Expand(v, typeA int, crit SizeCriterion) Clique {
	vs := make([]int, len(c.Vertices)+1)
	copy(vs, c.Vertices)
	vs[len(c.Vertices)] = v

	return Clique{Vertices: vs, Size: crit.Expand(c.Size, typeA)}
}

// Clone returns a deep copy.
func (c Clique) Clone() Clique {
	return Clique{Vertices: append([]int(nil), c.Vertices...), Size: c.Size}
}

// Result is the outcome of a search.
type Result struct {
	// Clique is the best clique found (empty for an empty product).
	Clique Clique

	// Nodes counts search-tree expansions, the root included.
	Nodes int64

	// Complete is false when a cutoff stopped the search early; Clique is
	// then the best incumbent so far.
	Complete bool

	// Clusters is the number of partitions searched (Approx only).
	Clusters int
}

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx cancels the search; the incumbent is returned with ctx.Err().
	Ctx context.Context

	// TimeLimit, if > 0, stops the search after this wall-clock duration.
	TimeLimit time.Duration

	// NodeLimit, if > 0, caps expansions (per cluster under Approx).
	NodeLimit int64

	// Workers bounds concurrent cluster searches in Approx.
	Workers int

	// NoBound disables score-bound pruning (testing and benchmarking).
	NoBound bool

	// OnIncumbent is called with a copy of every new best clique.
	// Approx serializes calls; cliques are then cluster-local bests.
	OnIncumbent func(Clique)

	err error
}

// DefaultOptions returns Options with bound pruning on, no cutoffs and
// GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit stops the search after d.
//
//	d > 0: deadline enabled
//	d == 0: no deadline
//	d < 0: invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithNodeLimit caps the number of search-tree expansions.
// Negative n is an ErrOptionViolation; 0 means no limit.
func WithNodeLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithWorkers bounds the goroutines Approx uses. 0 selects GOMAXPROCS.
func WithWorkers(w int) Option {
	return func(o *Options) {
		switch {
		case w < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)
		case w == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = w
		}
	}
}

// WithoutBound disables score-bound pruning. Results are identical either way.
func WithoutBound() Option {
	return func(o *Options) { o.NoBound = true }
}

// WithOnIncumbent registers a hook for new best cliques.
func WithOnIncumbent(fn func(Clique)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIncumbent = fn
		}
	}
}

// CheckOptions reports the first invalid option without running a search,
// so callers can reject bad input before building a product graph.
func CheckOptions(opts ...Option) error {
	_, err := resolve(opts)

	return err
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

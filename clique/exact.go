// Exact maximum-clique search with the connectivity constraint.
//
// The engine enumerates cliques of the modular product by depth-first
// backtracking over a candidate list that only shrinks:
//
//  1. On entry, a clique scoring strictly more than the incumbent replaces it
//     (first found wins ties).
//  2. Candidates are examined in list order, over a snapshot taken on entry.
//  3. A candidate not adjacent to every clique vertex is removed from the
//     working list.
//  4. With a non-empty clique, a candidate without a type-A edge to it is
//     skipped but stays in the working list: it may still join once a
//     sibling supplies the missing type-A neighbor.
//  5. Any other candidate is removed from the working list, then the search
//     recurses on clique+v with the surviving candidates adjacent to v.
//
// Dropping candidates not adjacent to v at step 5 is equivalent to letting
// the child remove them at step 3; it only tightens the bound.
//
// Bound pruning: a subtree is skipped when the criterion's Bound cannot beat
// the incumbent strictly. Because the incumbent only changes on strict
// improvement, the returned clique is the same with or without the bound.
//
// Cutoffs (deadline, node budget, context) are checked sparsely, every
// checkEvery expansions for clocks and contexts, on every expansion for the
// node budget.

package clique

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/mccis/product"
)

// checkEvery must be a power of two.
const checkEvery = 1024

// engine holds all search data for one invocation.
type engine struct {
	h    *product.Graph
	crit SizeCriterion

	useBound bool
	maxOrder int // min(n1,n2): no injective mapping is larger

	// Cutoffs
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	nodeLimit   int64
	nodes       int64
	stopped     bool
	ctxErr      error

	onIncumbent func(Clique)

	best Clique
}

func newEngine(h *product.Graph, crit SizeCriterion, o Options, deadline time.Time) *engine {
	e := &engine{
		h:           h,
		crit:        crit,
		useBound:    !o.NoBound,
		maxOrder:    h.MaxCliqueOrder(),
		ctx:         o.Ctx,
		nodeLimit:   o.NodeLimit,
		onIncumbent: o.OnIncumbent,
	}
	if !deadline.IsZero() {
		e.useDeadline = true
		e.deadline = deadline
	}

	return e
}

// tick accounts one expansion and reports whether the search must stop.
func (e *engine) tick() bool {
	if e.stopped {
		return true
	}
	if e.nodeLimit > 0 && e.nodes >= e.nodeLimit {
		e.stopped = true
		return true
	}
	e.nodes++
	if e.nodes&(checkEvery-1) != 0 {
		return false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.stopped = true
		return true
	}
	if err := e.ctx.Err(); err != nil {
		e.ctxErr = err
		e.stopped = true
		return true
	}

	return false
}

// fits reports whether v is adjacent to every clique vertex and counts the
// type-A edges among those adjacencies.
func (e *engine) fits(c Clique, v int) (bool, int) {
	var typeA int
	for _, u := range c.Vertices {
		switch e.h.EdgeType(u, v) {
		case product.EdgeNone:
			return false, 0
		case product.EdgeA:
			typeA++
		}
	}

	return true, typeA
}

// room is how many more vertices the clique could still take.
func (e *engine) room(cliqueLen, candidates int) int {
	r := e.maxOrder - cliqueLen
	if candidates < r {
		r = candidates
	}
	if r < 0 {
		return 0
	}

	return r
}

func (e *engine) record(c Clique) {
	e.best = c
	if e.onIncumbent != nil {
		e.onIncumbent(c.Clone())
	}
}

// expand is one search-tree node. cands is owned by this frame.
func (e *engine) expand(c Clique, cands []int) {
	if c.Size > e.best.Size {
		e.record(c)
	}
	if len(cands) == 0 {
		return
	}
	if e.useBound && e.crit.Bound(c.Size, c.Len(), e.room(c.Len(), len(cands))) <= e.best.Size {
		return
	}

	removed := make([]bool, len(cands))
	var (
		i, j, v, u int
		ok         bool
		typeA      int
		child      []int
	)
	for i, v = range cands {
		ok, typeA = e.fits(c, v)
		if !ok {
			removed[i] = true
			continue
		}
		if c.Len() > 0 && typeA == 0 {
			continue
		}
		removed[i] = true
		if e.tick() {
			return
		}

		child = make([]int, 0, len(cands)-i)
		for j, u = range cands {
			if !removed[j] && e.h.HasEdge(v, u) {
				child = append(child, u)
			}
		}
		e.expand(c.Expand(v, typeA, e.crit), child)
		if e.stopped {
			return
		}
	}
}

// run searches from the empty clique over cands.
func (e *engine) run(cands []int) *Result {
	e.nodes = 1 // root
	e.expand(Clique{}, cands)

	return &Result{
		Clique:   e.best,
		Nodes:    e.nodes,
		Complete: !e.stopped,
	}
}

// Exact returns the maximum clique of h under crit that satisfies the
// connectivity constraint: every vertex after the first has a type-A edge
// to an earlier one.
//
// Errors:
//   - ErrGraphNil, ErrUnknownCriterion (nil crit), ErrOptionViolation.
//   - ctx.Err() on cancellation, together with the incumbent.
//
// Complexity: exponential in h.Order() in the worst case.
func Exact(h *product.Graph, crit SizeCriterion, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	cands := make([]int, h.Order())
	for p := range cands {
		cands[p] = p
	}

	return ExactWithin(h, crit, cands, opts...)
}

// ExactWithin runs Exact restricted to the subgraph induced by cands,
// examined in the given order.
func ExactWithin(h *product.Graph, crit SizeCriterion, cands []int, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	if crit == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnknownCriterion)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	list, err := checkCandidates(h, cands)
	if err != nil {
		return nil, err
	}

	var deadline time.Time
	if o.TimeLimit > 0 {
		deadline = time.Now().Add(o.TimeLimit)
	}

	return exactWithin(h, crit, list, o, deadline)
}

// exactWithin is the validated core shared with Approx.
func exactWithin(h *product.Graph, crit SizeCriterion, cands []int, o Options, deadline time.Time) (*Result, error) {
	if err := o.Ctx.Err(); err != nil {
		return &Result{Clique: Clique{}, Complete: false}, err
	}
	e := newEngine(h, crit, o, deadline)
	res := e.run(cands)

	return res, e.ctxErr
}

// checkCandidates validates indices and returns a private copy.
func checkCandidates(h *product.Graph, cands []int) ([]int, error) {
	n := h.Order()
	seen := make([]bool, n)
	out := make([]int, len(cands))
	for i, p := range cands {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: %d out of range [0,%d)", ErrInvalidCandidate, p, n)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: duplicate %d", ErrInvalidCandidate, p)
		}
		seen[p] = true
		out[i] = p
	}

	return out, nil
}

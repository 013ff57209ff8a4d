package clique

import (
	"fmt"
	"math/bits"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mccis/bfs"
	"github.com/katalvlaran/mccis/product"
)

// ClusterSize returns k = max(1, ⌈log2(order)⌉).
func ClusterSize(order int) int {
	if order <= 2 {
		return 1
	}

	return bits.Len(uint(order - 1))
}

// typeAView exposes only the type-A edges of a product graph to bfs.
type typeAView struct{ h *product.Graph }

func (v typeAView) Order() int            { return v.h.Order() }
func (v typeAView) Neighbors(p int) []int { return v.h.NeighborsA(p) }

// Partition splits the vertices of h into disjoint clusters of at most k
// vertices. Each cluster is grown by BFS over type-A edges from the
// lowest-index unassigned vertex, never entering assigned vertices, and
// stops after k discoveries. Vertices without unassigned type-A neighbors
// become singletons.
//
// Clusters are returned in seed order, each sorted ascending.
// Complexity: O(C·N + E_A) for C clusters.
func Partition(h *product.Graph, k int) ([][]int, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClusterSize, k)
	}

	n := h.Order()
	view := typeAView{h: h}
	assigned := make([]bool, n)
	free := func(_, nbr int) bool { return !assigned[nbr] }

	var clusters [][]int
	for seed := 0; seed < n; seed++ {
		if assigned[seed] {
			continue
		}
		res, err := bfs.BFS(view, seed, bfs.WithMaxVisits(k), bfs.WithFilterNeighbor(free))
		if err != nil {
			return nil, fmt.Errorf("Partition: seed %d: %w", seed, err)
		}
		cluster := append([]int(nil), res.Order...)
		for _, p := range cluster {
			assigned[p] = true
		}
		sort.Ints(cluster)
		clusters = append(clusters, cluster)
	}

	return clusters, nil
}

// Approx runs ExactWithin on every cluster of Partition(h, ClusterSize(N))
// and returns the best clique. Cluster searches run on up to Workers
// goroutines; the reduction walks clusters in order, so the lowest cluster
// index wins ties and the result does not depend on the worker count.
//
// The time limit is one deadline shared by all clusters; the node limit
// applies to each cluster. Complete is true only if every cluster finished.
// No optimality is claimed: Exact's score is always ≥ Approx's.
func Approx(h *product.Graph, crit SizeCriterion, opts ...Option) (*Result, error) {
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

	clusters, err := Partition(h, ClusterSize(h.Order()))
	if err != nil {
		return nil, err
	}

	var deadline time.Time
	if o.TimeLimit > 0 {
		deadline = time.Now().Add(o.TimeLimit)
	}
	if o.OnIncumbent != nil {
		var mu sync.Mutex
		hook := o.OnIncumbent
		o.OnIncumbent = func(c Clique) {
			mu.Lock()
			defer mu.Unlock()
			hook(c)
		}
	}

	results := make([]*Result, len(clusters))
	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i := range clusters {
		g.Go(func() error {
			// Small clusters never reach the sparse clock check in tick.
			if !deadline.IsZero() && time.Now().After(deadline) {
				results[i] = &Result{}
				return nil
			}
			co := o
			co.Ctx = gctx
			r, err := exactWithin(h, crit, clusters[i], co, deadline)
			results[i] = r

			return err
		})
	}
	werr := g.Wait()

	out := &Result{Complete: true, Clusters: len(clusters)}
	for _, r := range results {
		if r == nil {
			out.Complete = false
			continue
		}
		out.Nodes += r.Nodes
		out.Complete = out.Complete && r.Complete
		if r.Clique.Size > out.Clique.Size {
			out.Clique = r.Clique
		}
	}
	if werr != nil {
		out.Complete = false
	}

	return out, werr
}

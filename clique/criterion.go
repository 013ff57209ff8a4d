package clique

import "fmt"

// SizeCriterion scores a clique as it grows. The set is closed: only
// Vertices and VerticesAndEdges implement it.
type SizeCriterion interface {
	// Name returns the configuration tag ("Vertices" or "VerticesAndEdges").
	Name() string

	// Expand returns the score after adding one vertex that forms typeA
	// new type-A edges with the clique.
	Expand(size, typeA int) int

	// Bound returns an upper bound on the score reachable from a clique of
	// cliqueLen vertices and score size by adding at most room vertices.
	Bound(size, cliqueLen, room int) int

	sealed()
}

// Criterion tags accepted by ParseCriterion.
const (
	TagVertices         = "Vertices"
	TagVerticesAndEdges = "VerticesAndEdges"
)

var (
	// Vertices scores a clique by its vertex count.
	Vertices SizeCriterion = verticesCriterion{}

	// VerticesAndEdges scores a clique by vertex count plus the number of
	// type-A edges among its vertices.
	VerticesAndEdges SizeCriterion = verticesAndEdgesCriterion{}
)

type verticesCriterion struct{}

func (verticesCriterion) Name() string { return TagVertices }

func (verticesCriterion) Expand(size, _ int) int { return size + 1 }

func (verticesCriterion) Bound(size, _, room int) int { return size + room }

func (verticesCriterion) sealed() {}

type verticesAndEdgesCriterion struct{}

func (verticesAndEdgesCriterion) Name() string { return TagVerticesAndEdges }

func (verticesAndEdgesCriterion) Expand(size, typeA int) int { return size + 1 + typeA }

// Bound assumes every added vertex is A-adjacent to the whole clique:
// the k-th addition (k from 0) contributes 1 + cliqueLen + k.
func (verticesAndEdgesCriterion) Bound(size, cliqueLen, room int) int {
	return size + room*(1+cliqueLen) + room*(room-1)/2
}

func (verticesAndEdgesCriterion) sealed() {}

// ParseCriterion maps a tag to its criterion. Matching is exact and
// case-sensitive; anything else is ErrUnknownCriterion.
func ParseCriterion(tag string) (SizeCriterion, error) {
	switch tag {
	case TagVertices:
		return Vertices, nil
	case TagVerticesAndEdges:
		return VerticesAndEdges, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, tag)
	}
}

// Criteria lists every supported criterion in a stable order.
func Criteria() []SizeCriterion {
	return []SizeCriterion{Vertices, VerticesAndEdges}
}

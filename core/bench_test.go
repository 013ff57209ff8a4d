// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mccis/core"
)

// BenchmarkAddEdge measures edge insertion on a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
}

// BenchmarkAdjacencyMatrix measures the dense snapshot used by the product builder.
func BenchmarkAdjacencyMatrix(b *testing.B) {
	const n = 256
	g := core.NewGraph(core.WithCapacity(n))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyMatrix()
	}
}

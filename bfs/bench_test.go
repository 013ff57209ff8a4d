package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mccis/bfs"
)

// BenchmarkBFS_Line measures a full traversal of a 10k-vertex line.
func BenchmarkBFS_Line(b *testing.B) {
	const n = 10000
	g := make(adjacency, n)
	for i := 1; i < n; i++ {
		g[i-1] = append(g[i-1], i)
		g[i] = append(g[i], i-1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mccis/matrix"
)

// ExampleToGraph reads a CSV adjacency matrix and builds the graph.
func ExampleToGraph() {
	m, err := matrix.ReadCSV(strings.NewReader("0,1,1\n1,0,0\n1,0,0\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := matrix.ToGraph(m, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices(), g.Edges())
	// Output:
	// [0 1 2] [{0 1} {0 2}]
}

// ExampleValidateAdjacency shows a rejected self-loop.
func ExampleValidateAdjacency() {
	m, _ := matrix.ReadCSV(strings.NewReader("1,0\n0,0\n"))
	fmt.Println(matrix.ValidateAdjacency(m))
	// Output:
	// ValidateAdjacency: matrix: diagonal not zero at 0
}

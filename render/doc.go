// Package render writes Graphviz DOT views of input graphs and of the
// modular product, with an MCCIS solution highlighted.
//
// Both writers build a gonum simple.UndirectedGraph whose nodes and edges
// carry DOT attributes, then hand it to gonum's graph/encoding/dot encoder.
// Output order follows gonum's node-ID ordering, which is the insertion
// index of the source graph, so renders are byte-stable.
//
// Styling:
//   - Highlighted vertices: filled, red outline.
//   - Edges induced by the highlighted set: red, thicker.
//   - Product graph: A edges solid, B edges dashed.
package render

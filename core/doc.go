// Package core provides the weighted adjacency-list graph used by the terrain
// router: vertices are dense integer ids (linear grid indices) and every vertex
// owns an ordered list of outgoing edges.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops)
//   - Deterministic iteration: Neighbors and Edges return edges in insertion order
//   - A single sync.RWMutex guarding the adjacency lists
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Directed graphs store only "from→to".
//	    Undirected graphs mirror every edge into the adjacency list of "to".
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph   // O(n)
//	AddEdge(from, to int, weight float64) error   // O(1) amortized
//	HasEdge(from, to int) bool                    // O(deg(from))
//	Neighbors(v int) ([]Edge, error)              // O(deg(v)), copy
//	Edges() []Edge                                // O(V+E), copy
//	VertexCount() int, EdgeCount() int            // O(1)
//	Clone() *Graph                                // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound – vertex id outside [0, VertexCount)
//	ErrBadWeight      – non-zero weight on an unweighted graph, or NaN/±Inf weight
//	ErrLoopNotAllowed – self-loop when loops are disabled
package core

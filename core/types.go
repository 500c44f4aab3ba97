// Package core defines the Graph and Edge types, the sentinel errors and the
// NewGraph constructor.
//
// The Graph keeps one adjacency list per vertex: adjacency[v] holds every edge
// that can be walked out of v. Undirected edges are stored twice, once per
// endpoint, so traversal never has to look at the reverse direction.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside [0, VertexCount).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one traversable connection From→To with a cost.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the traversal cost (zero in unweighted graphs).
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an adjacency-list graph over the dense vertex ids 0..n-1.
//
// mu guards adjacency and edgeCount; the configuration flags are immutable
// after NewGraph returns.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // edges are one-way
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops

	// Storage
	adjacency [][]Edge // adjacency[v] = edges leaving v
	edgeCount int      // number of AddEdge calls that succeeded
}

// NewGraph creates a Graph with n isolated vertices and the given options.
// By default, Graph is undirected, unweighted, and rejects self-loops.
// Negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adjacency: make([][]Edge, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

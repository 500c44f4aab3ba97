// Package core: Graph method implementations.
//
// Every method takes g.mu: writers (AddEdge) the exclusive lock, readers the
// shared lock. Returned slices are copies, so callers may keep them after the
// graph changes.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the edge from→to with the given weight.
// In undirected graphs the mirror edge to→from is stored as well; it counts
// as a single edge in EdgeCount.
//
// Returns ErrVertexNotFound if either endpoint is outside [0, VertexCount),
// ErrLoopNotAllowed for from == to without WithLoops, and ErrBadWeight for a
// non-zero weight on an unweighted graph or a NaN/Inf weight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	// Validate weight before taking the lock; flags are immutable.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: %v on unweighted graph", ErrBadWeight, weight)
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.hasVertex(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	// Mirror undirected edges; a loop is stored once.
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

// hasVertex is HasVertex without locking; callers hold g.mu.
func (g *Graph) hasVertex(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// HasEdge reports whether an edge can be walked from→to.
// For undirected graphs HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return false
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the edges leaving v, in insertion order.
// Returns ErrVertexNotFound if v is not a vertex.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Edges returns every stored edge, grouped by source vertex in ascending id
// order. Undirected graphs report both mirror entries.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, list := range g.adjacency {
		total += len(list)
	}
	out := make([]Edge, 0, total)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of successful AddEdge calls.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone takes the read lock for snapshotting; no mutation of the source graph.
//   - Clear takes the write lock.

package core

// CloneEmpty returns a new Graph with identical configuration and vertex
// count, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmpty()
}

// cloneEmpty is CloneEmpty without locking; callers hold g.mu.
func (g *Graph) cloneEmpty() *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(len(g.adjacency), opts...)
}

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmpty()
	for v, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[v] = make([]Edge, len(list))
		copy(clone.adjacency[v], list)
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every edge while keeping the vertices and configuration flags.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v := range g.adjacency {
		g.adjacency[v] = nil
	}
	g.edgeCount = 0
}

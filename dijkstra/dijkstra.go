// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Vertices are dense ids, so distances, predecessors and visited flags are slices.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/heightfield/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance from Source to v, Unreachable (+Inf) if none.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     prev[v] == NoPredecessor for the source and for unreachable v.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(NoPredecessor)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state and run.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, thresholds, etc.).
	dist    []float64   // dist[v] = current best distance from Source.
	prev    []int       // prev[v] = predecessor on the shortest path.
	visited []bool      // visited[v] = distance finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to Unreachable and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance and relaxes
// its outgoing edges, until the heap is empty or the closest remaining vertex
// lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves distances to its neighbors.
// Edges with weight ≥ InfEdgeThreshold are skipped.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Pre-scan guarantees this; the graph may have changed since.
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, so equal-cost ties keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// PathTo rebuilds the path source→dst from the predecessor slice returned
// with WithReturnPath. The result starts with source and ends with dst.
//
// It returns an empty (nil) path when dst is outside the slices, when dst is
// Unreachable, or when the predecessor chain does not lead back to source.
// It never follows an undefined predecessor.
// Complexity: O(path length).
func PathTo(dist []float64, prev []int, source, dst int) []int {
	if dst < 0 || dst >= len(dist) || dst >= len(prev) || source < 0 || source >= len(prev) {
		return nil
	}
	if dist[dst] == Unreachable {
		return nil
	}

	var reversed []int
	// The walk can take at most len(prev) steps on a well-formed tree.
	for at, steps := dst, 0; at >= 0 && at < len(prev) && steps <= len(prev); at, steps = prev[at], steps+1 {
		reversed = append(reversed, at)
		if at == source {
			break
		}
	}
	if len(reversed) == 0 || reversed[len(reversed)-1] != source {
		return nil
	}

	path := make([]int, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex id
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are skipped when popped (visited[v] already true).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

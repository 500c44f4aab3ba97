// Package dijkstra provides an implementation of Dijkstra's shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Vertices are the dense integer ids of a core.Graph, so results are slices
// indexed by vertex id rather than maps. The terrain package builds such graphs
// from height grids (one vertex per cell) and routes over them.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor slice, so you can rebuild each path with PathTo.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Unreachable vertices:
//
//   - dist[v] is Unreachable (+Inf) and prev[v] is NoPredecessor (-1).
//   - PathTo returns an empty path for them instead of walking an undefined chain.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option was given.
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrUnweightedGraph: the graph was not built with core.WithWeighted().
//   - ErrVertexNotFound:  the source vertex id is outside the graph.
//   - ErrNegativeWeight:  some edge has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) MaxDistance set to a negative value.
//   - ErrBadInfThreshold: (panic) InfEdgeThreshold set to zero or a negative value.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []float64, prev []int, err error)
//	func PathTo(dist []float64, prev []int, source, dst int) []int
package dijkstra

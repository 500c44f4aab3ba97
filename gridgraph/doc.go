// Package gridgraph treats the lattice of a height grid as a graph,
// enabling neighborhood scans, region analysis and conversion into a
// weighted *core.Graph for shortest-path search.
//
// What:
//
//   - GridGraph describes a Rows×Cols lattice with Conn4 or Conn8 connectivity.
//   - Neighborhood lists every neighbor slot of a cell, flagging the ones off the lattice.
//   - ConnectedComponents groups cells selected by a membership predicate into regions.
//   - ToCoreGraph builds a directed graph with caller-supplied edge weights.
//
// Why:
//
//   - Terrain analysis: slope and erosion kernels walk the 8-neighborhood.
//   - Routing: slope-weighted graphs feed the dijkstra package.
//   - Topology: count lakes, snowfields and other layer regions.
//
// Complexity:
//
//   - Neighborhood:        O(d), d = 4 or 8.
//   - ConnectedComponents: O(Rows×Cols×d), Memory: O(Rows×Cols).
//   - ToCoreGraph:         O(Rows×Cols×d), Memory: O(Rows×Cols + E).
//
// Errors:
//
//   - ErrEmptyGrid:  lattice has no rows or no columns.
//   - ErrOutOfRange: coordinate or index outside the lattice.
//   - ErrNilWeight:  ToCoreGraph called without a weight function.
package gridgraph

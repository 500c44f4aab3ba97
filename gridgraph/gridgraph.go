// Package gridgraph treats a Rows×Cols lattice of cells as a graph.
// Cell (i,j) has the row-major index i*Cols + j, matching the layout of
// grid.Grid values where i runs along x and j along y.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/heightfield/core"
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// NewGridGraph constructs the topology of a rows×cols lattice.
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(1).
func NewGridGraph(rows, cols int, opts GridOptions) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{Rows: rows, Cols: cols, Conn: opts.Conn, offsets: offsets}, nil
}

// InBounds reports whether (i,j) lies within the lattice.
// Complexity: O(1).
func (gg *GridGraph) InBounds(i, j int) bool {
	return i >= 0 && i < gg.Rows && j >= 0 && j < gg.Cols
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int { return gg.Rows * gg.Cols }

// Index maps (i,j) to its row-major index i*Cols + j.
// Complexity: O(1).
func (gg *GridGraph) Index(i, j int) int {
	return i*gg.Cols + j
}

// CheckedIndex is Index with bounds checking; it returns ErrOutOfRange
// for cells off the lattice.
func (gg *GridGraph) CheckedIndex(i, j int) (int, error) {
	if !gg.InBounds(i, j) {
		return -1, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, gg.Rows, gg.Cols)
	}

	return gg.Index(i, j), nil
}

// Coordinate converts a row-major index back to (i,j).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (i, j int) {
	return idx / gg.Cols, idx % gg.Cols
}

// NeighborOffsets returns a copy of the (di,dj) offsets for gg.Conn,
// in the fixed order Neighborhood uses.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	out := make([][2]int, len(gg.offsets))
	copy(out, gg.offsets)

	return out
}

// Neighborhood returns every neighbor slot of (i,j), including those that
// fall outside the lattice (OK=false), so callers can apply their own
// edge policy. Slot order is stable: row-major over the offsets.
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighborhood(i, j int) []Neighbor {
	out := make([]Neighbor, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		ni, nj := i+d[0], j+d[1]
		n := Neighbor{I: ni, J: nj, DI: d[0], DJ: d[1], Index: -1}
		if gg.InBounds(ni, nj) {
			n.Index = gg.Index(ni, nj)
			n.OK = true
		}
		out = append(out, n)
	}

	return out
}

// ToCoreGraph converts the lattice into a directed, weighted *core.Graph
// whose vertex ids are cell indices. For every cell and every in-bounds
// neighbor, weight decides the edge cost or omits the edge.
// Errors from core.Graph.AddEdge (e.g. NaN weights) are wrapped and returned.
// Complexity: O(Rows×Cols×d) time, Memory: O(Rows×Cols + E).
func (gg *GridGraph) ToCoreGraph(weight WeightFunc) (*core.Graph, error) {
	if weight == nil {
		return nil, ErrNilWeight
	}
	g := core.NewGraph(gg.Len(), core.WithDirected(true), core.WithWeighted())
	for i := 0; i < gg.Rows; i++ {
		for j := 0; j < gg.Cols; j++ {
			from := gg.Index(i, j)
			for _, n := range gg.Neighborhood(i, j) {
				if !n.OK {
					continue
				}
				w, ok := weight(from, n)
				if !ok {
					continue
				}
				if err := g.AddEdge(from, n.Index, w); err != nil {
					return nil, fmt.Errorf("gridgraph: edge (%d,%d)→(%d,%d): %w", i, j, n.I, n.J, err)
				}
			}
		}
	}

	return g, nil
}

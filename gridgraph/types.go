// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/heightfield.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the lattice has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfRange indicates a cell coordinate or index outside the lattice.
	ErrOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrNilWeight indicates ToCoreGraph was called without a weight function.
	ErrNilWeight = errors.New("gridgraph: weight function is nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Neighbor describes one neighbor slot of a cell.
// DI and DJ are the offsets from the center cell. OK is false when the
// slot falls outside the lattice; Index is then -1.
type Neighbor struct {
	I, J   int
	DI, DJ int
	Index  int
	OK     bool
}

// WeightFunc returns the weight of the directed edge from cell index
// `from` to neighbor n. Returning ok=false omits the edge.
type WeightFunc func(from int, n Neighbor) (w float64, ok bool)

// GridOptions contains tunable parameters for grid traversal.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// GridGraph is the topology of a Rows×Cols lattice. It holds no cell values;
// callers pair it with their own value slice laid out by Index.
// It is immutable once built.
type GridGraph struct {
	Rows, Cols int
	Conn       Connectivity
	offsets    [][2]int
}

// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold,
// unreachable targets and path reconstruction.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightfield/core"
	"github.com/katalvlaran/heightfield/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NoSource(t *testing.T) {
	g := core.NewGraph(1, core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	// ErrNoSource has priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	g := core.NewGraph(2)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(2, core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(5))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(2, core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, -5))
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		opts := dijkstra.DefaultOptions(0)
		dijkstra.WithMaxDistance(-1)(&opts)
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		opts := dijkstra.DefaultOptions(0)
		dijkstra.WithInfEdgeThreshold(0)(&opts)
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

// triangle builds 0-1 (1), 1-2 (2), 0-2 (5), undirected.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

func TestDijkstra_SimpleTriangle_NoPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_SimpleTriangle_WithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, 1}, prev)
	assert.Equal(t, []int{0, 1, 2}, dijkstra.PathTo(dist, prev, 0, 2))
	assert.Equal(t, []int{0}, dijkstra.PathTo(dist, prev, 0, 0))
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 1, 1))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[1])
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Equal(t, dijkstra.NoPredecessor, prev[2])
	assert.Empty(t, dijkstra.PathTo(dist, prev, 0, 2))
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, dist)
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph(1, core.WithWeighted())
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor}, prev)
}

// ------------------------------------------------------------------------
// 3. Options: MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	// Chain 0-1-2-3 with unit weights.
	g := core.NewGraph(4, core.WithWeighted())
	for v := 0; v < 3; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[2])
	assert.True(t, math.IsInf(dist[3], 1))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Without a threshold the detour 0-1-2 wins; at 3 every edge is a wall.
	g := core.NewGraph(3, core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(0, 2, 100))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, 6.0, dist[2])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
}

// ------------------------------------------------------------------------
// 4. PathTo edge cases.
// ------------------------------------------------------------------------

func TestPathTo_Guards(t *testing.T) {
	dist := []float64{0, 1, math.Inf(1)}
	prev := []int{dijkstra.NoPredecessor, 0, dijkstra.NoPredecessor}

	assert.Empty(t, dijkstra.PathTo(dist, prev, 0, 2), "unreachable")
	assert.Empty(t, dijkstra.PathTo(dist, prev, 0, -1), "negative dst")
	assert.Empty(t, dijkstra.PathTo(dist, prev, 0, 3), "dst out of range")
	assert.Empty(t, dijkstra.PathTo(dist, prev, 2, 1), "chain does not reach source")
	assert.Empty(t, dijkstra.PathTo(dist, nil, 0, 1), "missing prev")
	assert.Equal(t, []int{0, 1}, dijkstra.PathTo(dist, prev, 0, 1))
}

// TestDijkstra_GridAgainstManhattan cross-checks distances on a 4-connected
// unit grid, where the shortest distance equals the Manhattan distance.
func TestDijkstra_GridAgainstManhattan(t *testing.T) {
	const rows, cols = 6, 7
	g := core.NewGraph(rows*cols, core.WithWeighted())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				require.NoError(t, g.AddEdge(r*cols+c, r*cols+c+1, 1))
			}
			if r+1 < rows {
				require.NoError(t, g.AddEdge(r*cols+c, (r+1)*cols+c, 1))
			}
		}
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			assert.Equal(t, float64(r+c), dist[v])
			assert.Len(t, dijkstra.PathTo(dist, prev, 0, v), r+c+1)
		}
	}
}

package terrain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heightfield/core"
	"github.com/katalvlaran/heightfield/dijkstra"
	"github.com/katalvlaran/heightfield/gridgraph"
	"github.com/katalvlaran/heightfield/layer"
)

// SlopeGraph builds the routing graph from a snapshot of the current
// elevation: one directed edge per cell and in-grid 8-neighbour, weighted by
// the absolute slope angle in degrees.
func (t *Terrain) SlopeGraph() (*core.Graph, error) {
	snap := t.g.Values()
	g, err := t.conn8.ToCoreGraph(func(from int, n gridgraph.Neighbor) (float64, bool) {
		return math.Abs(slopeAngle(snap[from], snap[n.Index], t.distance(n))), true
	})
	if err != nil {
		return nil, fmt.Errorf("terrain: slope graph: %w", err)
	}

	return g, nil
}

// Index returns the cell index of (i,j), or ErrOutOfRange.
func (t *Terrain) Index(i, j int) (int, error) {
	idx, err := t.conn8.CheckedIndex(i, j)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}

	return idx, nil
}

// Route finds the least-slope path between two cell indices and marks its
// cells with layer.Path. An unreachable destination yields ErrUnreachable
// together with a Route whose Path is empty and whose Distances are set.
func (t *Terrain) Route(src, dst int) (Route, error) {
	n := t.g.Len()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Route{}, fmt.Errorf("%w: route %d→%d over %d cells", ErrOutOfRange, src, dst, n)
	}
	g, err := t.SlopeGraph()
	if err != nil {
		return Route{}, err
	}

	opts := []dijkstra.Option{dijkstra.Source(src), dijkstra.WithReturnPath()}
	if !math.IsInf(t.opts.MaxRouteSlope, 1) {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(t.opts.MaxRouteSlope))
	}
	dist, prev, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return Route{}, fmt.Errorf("terrain: route: %w", err)
	}

	path := dijkstra.PathTo(dist, prev, src, dst)
	if len(path) == 0 {
		t.log.Debug("route unreachable", "src", src, "dst", dst)
		return Route{Path: []int{}, Cost: math.Inf(1), Distances: dist}, fmt.Errorf("%w: %d→%d", ErrUnreachable, src, dst)
	}
	for _, v := range path {
		t.layers[v] = layer.Path
	}
	t.log.Debug("route", "src", src, "dst", dst, "cells", len(path), "cost", dist[dst])

	return Route{Path: path, Cost: dist[dst], Distances: dist}, nil
}

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/heightfield/core"
	"github.com/katalvlaran/heightfield/dijkstra"
)

// buildGrid returns an 8-connected grid graph with unit weights.
func buildGrid(n int) *core.Graph {
	g := core.NewGraph(n*n, core.WithWeighted())
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := r*n + c
			if c+1 < n {
				_ = g.AddEdge(v, v+1, 1)
			}
			if r+1 < n {
				_ = g.AddEdge(v, v+n, 1)
				if c+1 < n {
					_ = g.AddEdge(v, v+n+1, 1.5)
				}
			}
		}
	}

	return g
}

func BenchmarkDijkstra_Grid64(b *testing.B) {
	g := buildGrid(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	}
}

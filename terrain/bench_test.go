package terrain_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/terrain"
)

func benchTerrain(b *testing.B, n int) *terrain.Terrain {
	b.Helper()
	bounds := grid.Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{float64(n - 1), float64(n - 1)}}
	tr, err := terrain.New(bounds, n, n, rough(n*n, 10, 1))
	if err != nil {
		b.Fatal(err)
	}

	return tr
}

func BenchmarkAreaMap_128(b *testing.B) {
	tr := benchTerrain(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.AreaMap()
	}
}

func BenchmarkThermalErosion_128(b *testing.B) {
	tr := benchTerrain(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.ThermalErosion()
	}
}

func BenchmarkRoute_64(b *testing.B) {
	tr := benchTerrain(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Route(0, 64*64-1)
	}
}

package terrain_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/terrain"
)

// unitTerrain builds a terrain whose bounds give a cell spacing of 1 on both axes.
func unitTerrain(t *testing.T, nx, ny int, vals []float64, opts ...terrain.Option) *terrain.Terrain {
	t.Helper()
	b := grid.Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{float64(nx - 1), float64(ny - 1)}}
	tr, err := terrain.New(b, nx, ny, vals, opts...)
	require.NoError(t, err)

	return tr
}

func constant(n int, c float64) []float64 {
	vals := make([]float64, n)
	for k := range vals {
		vals[k] = c
	}

	return vals
}

// rampX returns a field strictly decreasing along i: v(i,j) = nx - i.
func rampX(nx, ny int) []float64 {
	vals := make([]float64, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			vals[i*ny+j] = float64(nx - i)
		}
	}

	return vals
}

// rough returns reproducible values in [0, amp).
func rough(n int, amp float64, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	vals := make([]float64, n)
	for k := range vals {
		vals[k] = r.Float64() * amp
	}

	return vals
}

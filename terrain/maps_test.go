package terrain_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/terrain"
)

func TestLaplacianMap(t *testing.T) {
	// A single spike in the middle of a flat 3×3 field.
	vals := constant(9, 0)
	vals[4] = 4
	tr := unitTerrain(t, 3, 3, vals)
	lap := tr.LaplacianMap().Raw()

	assert.Equal(t, -16.0, lap[4]) // 0·4 − 4·4
	assert.Equal(t, 4.0, lap[1])   // edge cell, degree 3
	assert.Equal(t, 0.0, lap[0])   // corner, not 4-adjacent to the spike
	assert.Equal(t, 4.0, lap[3])   // (1,0)
	assert.Len(t, lap, 9)
}

// TestAreaMap_Ramp: on a strictly decreasing ramp the accumulated area never
// decreases downhill, and the total equals the seeding plus everything that
// was redistributed.
func TestAreaMap_Ramp(t *testing.T) {
	const nx, ny = 6, 5
	vals := rampX(nx, ny)
	tr := unitTerrain(t, nx, ny, vals)
	area := tr.AreaMap()
	a := area.Raw()

	for j := 0; j < ny; j++ {
		for i := 1; i < nx; i++ {
			assert.GreaterOrEqual(t, a[i*ny+j], a[(i-1)*ny+j], "i=%d j=%d", i, j)
		}
	}

	redistributed := 0.0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if i+1 < nx { // every cell but the last row has a lower neighbour
				redistributed += a[i*ny+j]
			}
		}
	}
	assert.InDelta(t, float64(nx*ny)+redistributed, area.Sum(), 1e-9)

	// The top row only has its seed.
	for j := 0; j < ny; j++ {
		assert.Equal(t, 1.0, a[j])
	}
}

// TestAreaMap_Basin: a local minimum keeps what it receives and a flat
// field distributes nothing.
func TestAreaMap_Basin(t *testing.T) {
	vals := constant(9, 1)
	vals[4] = 0
	a := unitTerrain(t, 3, 3, vals).AreaMap().Raw()
	assert.Equal(t, 9.0, a[4])
	for _, k := range []int{0, 1, 2, 3, 5, 6, 7, 8} {
		assert.Equal(t, 1.0, a[k])
	}

	flat := unitTerrain(t, 4, 4, constant(16, 2)).AreaMap()
	assert.Equal(t, 16.0, flat.Sum())
}

func TestDescendingPoints_Stable(t *testing.T) {
	tr := unitTerrain(t, 2, 2, []float64{1, 3, 3, 0})
	pts := tr.DescendingPoints()
	assert.Equal(t, []terrain.PointArea{
		{I: 0, J: 1, H: 3},
		{I: 1, J: 0, H: 3},
		{I: 0, J: 0, H: 1},
		{I: 1, J: 1, H: 0},
	}, pts)
}

func TestWetnessMap(t *testing.T) {
	flat := unitTerrain(t, 4, 4, constant(16, 1))
	w, err := flat.WetnessMap(flat.AreaMap(), flat.SlopeMap())
	require.NoError(t, err)
	for _, v := range w.Raw() {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
		assert.InDelta(t, math.Log(1/1e-6), v, 1e-9)
	}

	// Mismatched geometry is rejected.
	other, err := grid.New(grid.Bounds{Max: mgl64.Vec2{9, 9}}, 4, 4, nil)
	require.NoError(t, err)
	_, err = flat.WetnessMap(other, flat.SlopeMap())
	require.ErrorIs(t, err, terrain.ErrGeometryMismatch)
	_, err = flat.WetnessMap(flat.AreaMap(), nil)
	require.ErrorIs(t, err, terrain.ErrGeometryMismatch)

	// Finite everywhere on rough ground too.
	tr := unitTerrain(t, 8, 8, rough(64, 3, 1))
	w, err = tr.WetnessMap(tr.AreaMap(), tr.SlopeMap())
	require.NoError(t, err)
	for _, v := range w.Raw() {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestDerivedMaps_Independent(t *testing.T) {
	tr := unitTerrain(t, 3, 3, rampX(3, 3))
	for _, m := range []*grid.Grid{tr.SlopeMap(), tr.LaplacianMap(), tr.AreaMap()} {
		assert.True(t, tr.Grid().SameGeometry(m))
		m.Raw()[0] = -999
	}
	v, _ := tr.At(0, 0)
	assert.Equal(t, 3.0, v)
}

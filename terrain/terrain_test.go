package terrain_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/layer"
	"github.com/katalvlaran/heightfield/terrain"
)

func TestNew_Errors(t *testing.T) {
	_, err := terrain.New(grid.Bounds{}, 0, 2, nil)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
	_, err = terrain.New(grid.Bounds{}, 2, 2, []float64{1})
	require.ErrorIs(t, err, grid.ErrBadValues)
	_, err = terrain.NewFromGrid(nil)
	require.ErrorIs(t, err, terrain.ErrNilGrid)
}

func TestNewFromGrid_Copies(t *testing.T) {
	g, err := grid.New(grid.Bounds{Max: mgl64.Vec2{1, 1}}, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	tr, err := terrain.NewFromGrid(g)
	require.NoError(t, err)

	require.NoError(t, g.Set(0, 0, 100))
	v, err := tr.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.NotSame(t, g, tr.Grid())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { terrain.WithTalusAngle(0)(&terrain.Options{}) })
	assert.Panics(t, func() { terrain.WithTalusAngle(90)(&terrain.Options{}) })
	assert.Panics(t, func() { terrain.WithThermalRate(1.5)(&terrain.Options{}) })
	assert.Panics(t, func() { terrain.WithMinSlope(0)(&terrain.Options{}) })
	assert.Panics(t, func() { terrain.WithMaxRouteSlope(-1)(&terrain.Options{}) })
	assert.Panics(t, func() {
		terrain.WithThresholds(layer.Thresholds{Snow: 0.1, Concrete: 0.5, Grass: 0.2})(&terrain.Options{})
	})

	o := terrain.DefaultOptions()
	terrain.WithLogger(nil)(&o)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, 30.0, o.TalusAngle)
	assert.Equal(t, 0.01, o.ThermalRate)
	assert.Equal(t, 1e-6, o.MinSlope)
	assert.False(t, o.Diffusion)
	assert.False(t, o.RefreshDerived)
}

// TestScenarioA is the constant 3×3 grid over (0,0)-(2,2).
func TestScenarioA(t *testing.T) {
	tr := unitTerrain(t, 3, 3, constant(9, 5))

	grad, err := tr.Grid().Gradient(1, 1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec2{0, 0}, grad)

	s, err := tr.Slope(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)

	idx := tr.Grid().Index(1, 1)
	assert.Equal(t, 0.0, tr.SlopeMap().Raw()[idx])
	assert.Equal(t, 0.0, tr.LaplacianMap().Raw()[idx])

	n, err := tr.Normal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, n)
}

func TestPosition(t *testing.T) {
	b := grid.Bounds{Min: mgl64.Vec2{-2, 10}, Max: mgl64.Vec2{2, 14}}
	tr, err := terrain.New(b, 3, 5, constant(15, 7))
	require.NoError(t, err)

	p, err := tr.Position(2, 4)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{2, 7, 14}, p)
	p, err = tr.Position(1, 1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{0, 7, 11}, p)

	_, err = tr.Position(3, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestPositionAt checks triangle selection and the corner average.
func TestPositionAt(t *testing.T) {
	// v(i,j) = 10*i + j over a unit-spaced 3×3 grid.
	vals := []float64{0, 1, 2, 10, 11, 12, 20, 21, 22}
	tr := unitTerrain(t, 3, 3, vals)

	// Lower triangle (0,0),(0,1),(1,0).
	p, err := tr.PositionAt(0.25, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, (0+1+10)/3.0, p.Y(), 1e-12)
	assert.Equal(t, 0.25, p.X())
	assert.Equal(t, 0.25, p.Z())

	// Upper triangle (0,1),(1,1),(1,0).
	p, err = tr.PositionAt(0.75, 0.75)
	require.NoError(t, err)
	assert.InDelta(t, (1+11+10)/3.0, p.Y(), 1e-12)

	// The far corner belongs to the last cell's upper triangle.
	p, err = tr.PositionAt(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, (12+22+21)/3.0, p.Y(), 1e-12)

	for _, xy := range [][2]float64{{-0.5, 1}, {1, 2.5}, {3, 3}} {
		_, err = tr.PositionAt(xy[0], xy[1])
		assert.ErrorIs(t, err, terrain.ErrOutOfRange, "%v", xy)
	}

	thin := unitTerrain(t, 1, 3, nil)
	_, err = thin.PositionAt(0, 1)
	require.ErrorIs(t, err, terrain.ErrOutOfRange)
}

func TestNormal_Ramp(t *testing.T) {
	tr := unitTerrain(t, 4, 4, rampX(4, 4), terrain.WithGridOptions(grid.WithBoundary(grid.BoundaryClamp)))
	n, err := tr.Normal(1, 1)
	require.NoError(t, err)
	// Gradient is (-1, 0): normal leans towards +x.
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.Greater(t, n.X(), 0.0)
	assert.InDelta(t, 0.0, n.Y(), 1e-12)
	assert.InDelta(t, n.X(), n.Z(), 1e-12)
}

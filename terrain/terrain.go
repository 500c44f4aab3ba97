package terrain

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/gridgraph"
	"github.com/katalvlaran/heightfield/layer"
)

// Terrain is a height field with derived maps, erosion and routing.
// It owns its grid and per-cell layers; it is not safe for concurrent use.
type Terrain struct {
	g      *grid.Grid
	conn8  *gridgraph.GridGraph
	conn4  *gridgraph.GridGraph
	layers []layer.Kind
	opts   Options
	log    *slog.Logger
}

// New builds a terrain over bounds with the given resolution and elevation
// values (empty means flat at zero). Layers are classified immediately.
func New(bounds grid.Bounds, nx, ny int, values []float64, opts ...Option) (*Terrain, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.New(bounds, nx, ny, values, o.GridOptions...)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	return build(g, o)
}

// NewFromGrid builds a terrain over a deep copy of g.
func NewFromGrid(g *grid.Grid, opts ...Option) (*Terrain, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return build(g.Clone(), o)
}

func build(g *grid.Grid, o Options) (*Terrain, error) {
	nx, ny := g.Size()
	conn8, err := gridgraph.NewGridGraph(nx, ny, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	conn4, err := gridgraph.NewGridGraph(nx, ny, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	t := &Terrain{g: g, conn8: conn8, conn4: conn4, opts: o, log: o.Logger}
	t.ClassifyLayers()

	return t, nil
}

// Grid returns the live elevation grid.
func (t *Terrain) Grid() *grid.Grid { return t.g }

// Options returns the terrain options.
func (t *Terrain) Options() Options { return t.opts }

// Size returns the resolution (nx, ny).
func (t *Terrain) Size() (nx, ny int) { return t.g.Size() }

// At returns the elevation at (i,j).
func (t *Terrain) At(i, j int) (float64, error) { return t.g.At(i, j) }

// Position maps cell (i,j) to world space: x and z interpolate the bounds,
// y is the elevation.
func (t *Terrain) Position(i, j int) (mgl64.Vec3, error) {
	h, err := t.g.At(i, j)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("terrain: %w", err)
	}

	return t.position(i, j, h), nil
}

func (t *Terrain) position(i, j int, h float64) mgl64.Vec3 {
	b, sp := t.g.Bounds(), t.g.Spacing()

	return mgl64.Vec3{b.Min.X() + sp.X()*float64(i), h, b.Min.Y() + sp.Y()*float64(j)}
}

// PositionAt returns the surface point above world coordinate (x, y).
// The cell containing the point is split along its anti-diagonal; the
// elevation is the plain average of the three corners of the containing
// triangle, not a planar interpolation.
// Points outside the bounds, or terrains thinner than 2×2, yield ErrOutOfRange.
func (t *Terrain) PositionAt(x, y float64) (mgl64.Vec3, error) {
	nx, ny := t.g.Size()
	b, sp := t.g.Bounds(), t.g.Spacing()
	if nx < 2 || ny < 2 || sp.X() == 0 || sp.Y() == 0 {
		return mgl64.Vec3{}, fmt.Errorf("%w: %d×%d terrain has no cells", ErrOutOfRange, nx, ny)
	}

	i0, fx, ok := locate((x-b.Min.X())/sp.X(), nx)
	if !ok {
		return mgl64.Vec3{}, fmt.Errorf("%w: x=%g", ErrOutOfRange, x)
	}
	j0, fy, ok := locate((y-b.Min.Y())/sp.Y(), ny)
	if !ok {
		return mgl64.Vec3{}, fmt.Errorf("%w: y=%g", ErrOutOfRange, y)
	}

	var corners [3][2]int
	if fx+fy > 1 {
		corners = [3][2]int{{i0, j0 + 1}, {i0 + 1, j0 + 1}, {i0 + 1, j0}}
	} else {
		corners = [3][2]int{{i0, j0}, {i0, j0 + 1}, {i0 + 1, j0}}
	}
	vals := t.g.Raw()
	sum := 0.0
	for _, c := range corners {
		sum += vals[t.g.Index(c[0], c[1])]
	}

	return mgl64.Vec3{x, sum / 3, y}, nil
}

// locate splits a fractional cell coordinate into the cell index and the
// offset inside it. The far edge belongs to the last cell.
func locate(u float64, n int) (cell int, frac float64, ok bool) {
	const eps = 1e-9
	if math.IsNaN(u) || u < -eps || u > float64(n-1)+eps {
		return 0, 0, false
	}
	u = mgl64.Clamp(u, 0, float64(n-1))
	f := math.Floor(u)
	cell = int(f)
	if cell >= n-1 {
		return n - 2, 1, true
	}

	return cell, u - f, true
}

// Normal returns normalize(-gx, -gy, 1) from the gradient at (i,j).
func (t *Terrain) Normal(i, j int) (mgl64.Vec3, error) {
	grad, err := t.g.Gradient(i, j)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("terrain: %w", err)
	}

	return mgl64.Vec3{-grad.X(), -grad.Y(), 1}.Normalize(), nil
}

// Slope returns the gradient magnitude at (i,j).
func (t *Terrain) Slope(i, j int) (float64, error) {
	grad, err := t.g.Gradient(i, j)
	if err != nil {
		return 0, fmt.Errorf("terrain: %w", err)
	}

	return grad.Len(), nil
}

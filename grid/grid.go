package grid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Grid is a dense nx×ny scalar field over a world rectangle.
// Cell (i,j) with i∈[0,nx), j∈[0,ny) is stored at index i*ny + j.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	bounds Bounds
	nx, ny int
	values []float64
	opts   Options
}

// New builds a grid from bounds, resolution and initial values.
// An empty values slice yields a zero-filled grid; otherwise values must
// hold exactly nx*ny entries and is copied.
func New(bounds Bounds, nx, ny int, values []float64, opts ...Option) (*Grid, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, nx, ny)
	}
	vals := make([]float64, nx*ny)
	if len(values) != 0 {
		if len(values) != nx*ny {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrBadValues, len(values), nx*ny)
		}
		copy(vals, values)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Grid{bounds: bounds, nx: nx, ny: ny, values: vals, opts: o}, nil
}

// Like returns a new grid with the geometry and options of g and the given
// values (copied; nil or empty means zero-filled).
func (g *Grid) Like(values []float64) (*Grid, error) {
	return New(g.bounds, g.nx, g.ny, values, WithBoundary(g.opts.Boundary), WithFilter(g.opts.Filter))
}

// like is Like for values built inside the package, which always fit.
func (g *Grid) like(values []float64) *Grid {
	return &Grid{bounds: g.bounds, nx: g.nx, ny: g.ny, values: values, opts: g.opts}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	vals := make([]float64, len(g.values))
	copy(vals, g.values)

	return g.like(vals)
}

// Bounds returns the world rectangle of g.
func (g *Grid) Bounds() Bounds { return g.bounds }

// Size returns the resolution (nx, ny).
func (g *Grid) Size() (nx, ny int) { return g.nx, g.ny }

// Len returns nx*ny.
func (g *Grid) Len() int { return len(g.values) }

// Options returns the options g was built with.
func (g *Grid) Options() Options { return g.opts }

// SameGeometry reports whether o has the bounds and resolution of g.
func (g *Grid) SameGeometry(o *Grid) bool {
	return o != nil && g.nx == o.nx && g.ny == o.ny && g.bounds == o.bounds
}

// Index returns the linear index of (i,j). It does not check bounds.
func (g *Grid) Index(i, j int) int { return i*g.ny + j }

// Coordinate is the inverse of Index.
func (g *Grid) Coordinate(idx int) (i, j int) { return idx / g.ny, idx % g.ny }

// InBounds reports whether (i,j) is a valid cell.
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.nx && j >= 0 && j < g.ny
}

func (g *Grid) check(i, j int) error {
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, g.nx, g.ny)
	}

	return nil
}

// At returns the value at (i,j).
func (g *Grid) At(i, j int) (float64, error) {
	if err := g.check(i, j); err != nil {
		return 0, err
	}

	return g.values[g.Index(i, j)], nil
}

// Set stores v at (i,j).
func (g *Grid) Set(i, j int, v float64) error {
	if err := g.check(i, j); err != nil {
		return err
	}
	g.values[g.Index(i, j)] = v

	return nil
}

// Values returns a copy of the values in index order.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)

	return out
}

// Raw returns the live values slice. Writes through it mutate g; callers
// own the range checks.
func (g *Grid) Raw() []float64 { return g.values }

// Spacing returns the world distance between adjacent cells per axis,
// (Max-Min)/(n-1), or 0 along an axis with a single cell.
func (g *Grid) Spacing() mgl64.Vec2 {
	var s mgl64.Vec2
	if g.nx > 1 {
		s[0] = (g.bounds.Max.X() - g.bounds.Min.X()) / float64(g.nx-1)
	}
	if g.ny > 1 {
		s[1] = (g.bounds.Max.Y() - g.bounds.Min.Y()) / float64(g.ny-1)
	}

	return s
}

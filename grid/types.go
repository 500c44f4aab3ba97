// Package grid defines the sentinel errors, options and geometry types of
// the dense scalar field.
package grid

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates nx < 1 or ny < 1.
	ErrInvalidDimensions = errors.New("grid: dimensions must be at least 1×1")
	// ErrBadValues indicates a values slice whose length is not nx*ny.
	ErrBadValues = errors.New("grid: values length does not match nx*ny")
	// ErrOutOfRange indicates a cell coordinate outside [0,nx)×[0,ny).
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrDimensionMismatch indicates an elementwise operation on grids of different resolution.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
	// ErrNilSampler indicates a nil noise sampler.
	ErrNilSampler = errors.New("grid: sampler is nil")
)

// Bounds is the axis-aligned world rectangle covered by a grid.
// Min maps to cell (0,0) and Max to cell (nx-1, ny-1).
type Bounds struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// Boundary selects how Gradient treats the first and last row/column.
type Boundary int

const (
	// BoundaryPeriodic takes the missing neighbour from the opposite edge.
	BoundaryPeriodic Boundary = iota
	// BoundaryClamp falls back to a one-sided difference.
	BoundaryClamp
)

// Filter selects how Smooth and Blur weight the 3×3 kernel.
type Filter int

const (
	// FilterTruncated keeps the integer-truncated weights, which are all
	// zero, so both filters leave the grid untouched.
	FilterTruncated Filter = iota
	// FilterWeighted applies the real-valued kernel fractions.
	FilterWeighted
)

// Options configures grid behaviour.
type Options struct {
	Boundary Boundary
	Filter   Filter
}

// Option is a functional option for New.
type Option func(*Options)

// WithBoundary sets the gradient boundary policy.
func WithBoundary(b Boundary) Option {
	return func(o *Options) { o.Boundary = b }
}

// WithFilter sets the smoothing filter policy.
func WithFilter(f Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// DefaultOptions returns BoundaryPeriodic and FilterTruncated.
func DefaultOptions() Options {
	return Options{Boundary: BoundaryPeriodic, Filter: FilterTruncated}
}

// Sampler is a 2D scalar source such as *noise.Source.
type Sampler interface {
	Sample(x, y float64) float64
}

package grid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// neighbours returns the lower and upper cells used for the difference at
// position p along an axis of length n, or ok=false when the axis has a
// single cell.
func (g *Grid) neighbours(p, n int) (lo, hi int, ok bool) {
	if n < 2 {
		return 0, 0, false
	}
	lo, hi = p-1, p+1
	switch g.opts.Boundary {
	case BoundaryClamp:
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
	default:
		if lo < 0 {
			lo = n - 1
		}
		if hi > n-1 {
			hi = 0
		}
	}

	return lo, hi, true
}

// Gradient returns the difference of the two neighbours along each axis,
// halved and multiplied by the cell spacing of that axis. Edge cells use
// the boundary policy; a one-sided clamp difference is not halved.
func (g *Grid) Gradient(i, j int) (mgl64.Vec2, error) {
	if err := g.check(i, j); err != nil {
		return mgl64.Vec2{}, err
	}

	return g.gradient(i, j), nil
}

func (g *Grid) gradient(i, j int) mgl64.Vec2 {
	var grad mgl64.Vec2
	sp := g.Spacing()
	if lo, hi, ok := g.neighbours(i, g.nx); ok {
		diff := g.values[g.Index(hi, j)] - g.values[g.Index(lo, j)]
		grad[0] = diff / steps(lo, hi, i) * sp.X()
	}
	if lo, hi, ok := g.neighbours(j, g.ny); ok {
		diff := g.values[g.Index(i, hi)] - g.values[g.Index(i, lo)]
		grad[1] = diff / steps(lo, hi, j) * sp.Y()
	}

	return grad
}

// steps is the number of cells the difference spans: 2 for a central or
// wrapped difference, 1 for a clamped one-sided difference.
func steps(lo, hi, p int) float64 {
	if lo == p || hi == p {
		return 1
	}

	return 2
}

// GradXMap returns the x component of the gradient at every cell.
func (g *Grid) GradXMap() *Grid { return g.gradMap(0) }

// GradYMap returns the y component of the gradient at every cell.
func (g *Grid) GradYMap() *Grid { return g.gradMap(1) }

func (g *Grid) gradMap(axis int) *Grid {
	out := make([]float64, len(g.values))
	for i := 0; i < g.nx; i++ {
		for j := 0; j < g.ny; j++ {
			out[g.Index(i, j)] = g.gradient(i, j)[axis]
		}
	}

	return g.like(out)
}

// Add returns g + o elementwise. The result carries the geometry of g.
// Grids of different resolution yield ErrDimensionMismatch and a nil grid.
func (g *Grid) Add(o *Grid) (*Grid, error) {
	if err := g.sameSize(o); err != nil {
		return nil, err
	}
	out := make([]float64, len(g.values))
	floats.AddTo(out, g.values, o.values)

	return g.like(out), nil
}

// Sub returns g - o elementwise, with the same rules as Add.
func (g *Grid) Sub(o *Grid) (*Grid, error) {
	if err := g.sameSize(o); err != nil {
		return nil, err
	}
	out := make([]float64, len(g.values))
	floats.SubTo(out, g.values, o.values)

	return g.like(out), nil
}

func (g *Grid) sameSize(o *Grid) error {
	if o == nil {
		return fmt.Errorf("%w: nil operand", ErrDimensionMismatch)
	}
	if g.nx != o.nx || g.ny != o.ny {
		return fmt.Errorf("%w: %d×%d vs %d×%d", ErrDimensionMismatch, g.nx, g.ny, o.nx, o.ny)
	}

	return nil
}

// Sum returns the total of all values.
func (g *Grid) Sum() float64 { return floats.Sum(g.values) }

// MinValue returns the smallest value over the scan window
// [1,nx-1)×[1,ny-1), seeded with cell (1,1). The outer ring and the last
// row/column are not scanned. Grids with a single row or column are
// scanned in full.
func (g *Grid) MinValue() float64 {
	return g.scan(func(a, b float64) bool { return a < b })
}

// MaxValue is MinValue's counterpart for the largest value.
func (g *Grid) MaxValue() float64 {
	return g.scan(func(a, b float64) bool { return a > b })
}

func (g *Grid) scan(better func(a, b float64) bool) float64 {
	if g.nx == 1 || g.ny == 1 {
		best := g.values[0]
		for _, v := range g.values[1:] {
			if better(v, best) {
				best = v
			}
		}

		return best
	}
	best := g.values[g.Index(1, 1)]
	for i := 1; i < g.nx-1; i++ {
		for j := 1; j < g.ny-1; j++ {
			if v := g.values[g.Index(i, j)]; better(v, best) {
				best = v
			}
		}
	}

	return best
}

var (
	smoothKernel = [3][3]float64{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}}
	blurKernel   = [3][3]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
)

// Smooth applies the 1-2-1 / 2-4-2 / 1-2-1 kernel to interior cells. Edge
// cells pass through. Under FilterWeighted the weights are normalised by
// their sum (16); under FilterTruncated each weight over 9 truncates to
// zero and the grid is left unchanged.
func (g *Grid) Smooth() { g.convolve(smoothKernel) }

// Blur applies the uniform 3×3 kernel with the same rules as Smooth.
func (g *Grid) Blur() { g.convolve(blurKernel) }

func (g *Grid) convolve(k [3][3]float64) {
	if g.opts.Filter != FilterWeighted || g.nx < 3 || g.ny < 3 {
		return
	}
	sum := 0.0
	for _, row := range k {
		for _, w := range row {
			sum += w
		}
	}
	src := g.Values()
	for i := 1; i < g.nx-1; i++ {
		for j := 1; j < g.ny-1; j++ {
			acc := 0.0
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					acc += k[di+1][dj+1] / sum * src[g.Index(i+di, j+dj)]
				}
			}
			g.values[g.Index(i, j)] = acc
		}
	}
}

package terrain

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/heightfield/grid"
)

// derived builds a map with the terrain's geometry from values computed
// here, which always have the right length.
func (t *Terrain) derived(values []float64) *grid.Grid {
	m, err := t.g.Like(values)
	if err != nil {
		panic(fmt.Sprintf("terrain: derived map: %v", err))
	}

	return m
}

// SlopeMap returns the gradient magnitude of every cell.
func (t *Terrain) SlopeMap() *grid.Grid {
	gx, gy := t.g.GradXMap().Raw(), t.g.GradYMap().Raw()
	out := make([]float64, len(gx))
	for k := range out {
		out[k] = math.Hypot(gx[k], gy[k])
	}

	return t.derived(out)
}

// LaplacianMap returns the discrete Laplacian of every cell from its
// available 4-neighbours, (Σ neighbours − degree·h) / 1².
func (t *Terrain) LaplacianMap() *grid.Grid {
	const h = 1.0
	vals := t.g.Raw()
	out := make([]float64, len(vals))
	for idx := range vals {
		i, j := t.conn4.Coordinate(idx)
		sum, degree := 0.0, 0.0
		for _, n := range t.conn4.Neighborhood(i, j) {
			if !n.OK {
				continue
			}
			sum += vals[n.Index]
			degree++
		}
		out[idx] = (sum - degree*vals[idx]) / (h * h)
	}

	return t.derived(out)
}

// DescendingPoints returns every cell sorted by descending elevation;
// equal elevations keep index order.
func (t *Terrain) DescendingPoints() []PointArea {
	vals := t.g.Raw()
	pts := make([]PointArea, len(vals))
	for idx, h := range vals {
		i, j := t.g.Coordinate(idx)
		pts[idx] = PointArea{I: i, J: j, H: h}
	}
	sort.SliceStable(pts, func(a, b int) bool { return pts[a].H > pts[b].H })

	return pts
}

// AreaMap computes multi-flow-direction drainage area. Every cell starts
// with area 1; cells are visited from highest to lowest and each passes its
// accumulated area, split evenly, to its strictly lower 8-neighbours.
// Cells without a lower neighbour keep their area.
func (t *Terrain) AreaMap() *grid.Grid {
	vals := t.g.Raw()
	area := make([]float64, len(vals))
	for k := range area {
		area[k] = 1
	}

	for _, p := range t.DescendingPoints() {
		nbs := t.conn8.Neighborhood(p.I, p.J)
		lower := 0
		for _, n := range nbs {
			if n.OK && vals[n.Index] < p.H {
				lower++
			}
		}
		if lower == 0 {
			continue
		}
		share := area[t.g.Index(p.I, p.J)] / float64(lower)
		for _, n := range nbs {
			if n.OK && vals[n.Index] < p.H {
				area[n.Index] += share
			}
		}
	}

	return t.derived(area)
}

// WetnessMap returns log(area / slope) per cell. Both inputs must share the
// terrain's geometry. Slope and area are floored at MinSlope so the index
// stays finite on flat ground.
func (t *Terrain) WetnessMap(area, slope *grid.Grid) (*grid.Grid, error) {
	if !t.g.SameGeometry(area) || !t.g.SameGeometry(slope) {
		return nil, ErrGeometryMismatch
	}
	a, s := area.Raw(), slope.Raw()
	floor := t.opts.MinSlope
	out := make([]float64, len(a))
	for k := range out {
		out[k] = math.Log(math.Max(a[k], floor) / math.Max(s[k], floor))
	}

	return t.derived(out), nil
}

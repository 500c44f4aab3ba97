package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/heightfield/gridgraph"
)

// slopeAngle returns the angle in degrees of the drop from h0 to hn over
// the horizontal distance d. Coincident cells (d == 0) are flat or vertical.
func slopeAngle(h0, hn, d float64) float64 {
	if d == 0 {
		switch {
		case h0 > hn:
			return 90
		case h0 < hn:
			return -90
		default:
			return 0
		}
	}

	return mgl64.RadToDeg(math.Atan((h0 - hn) / d))
}

// distance returns the world distance to neighbour n, √2·spacing for
// diagonals on a square lattice.
func (t *Terrain) distance(n gridgraph.Neighbor) float64 {
	sp := t.g.Spacing()

	return math.Hypot(float64(n.DI)*sp.X(), float64(n.DJ)*sp.Y())
}

// ThermalErosion runs one talus pass and returns the number of cells that
// shed material. Angles are read from a snapshot taken at the start of the
// pass; writes go to the live grid, so no cell sees another's update from
// the same pass. Each interior cell with k neighbours steeper than the
// talus angle moves ThermalRate/k of its snapshot height to each of them.
// Total elevation is conserved.
func (t *Terrain) ThermalErosion() int {
	snap := t.g.Values()
	live := t.g.Raw()
	nx, ny := t.g.Size()
	talus, rate := t.opts.TalusAngle, t.opts.ThermalRate
	shed := 0
	steep := make([]int, 0, 8)

	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			c := t.g.Index(i, j)
			h0 := snap[c]
			steep = steep[:0]
			for _, n := range t.conn8.Neighborhood(i, j) {
				if n.OK && slopeAngle(h0, snap[n.Index], t.distance(n)) > talus {
					steep = append(steep, n.Index)
				}
			}
			if len(steep) == 0 {
				continue
			}
			amount := rate / float64(len(steep)) * h0
			for _, n := range steep {
				live[n] += amount
				live[c] -= amount
			}
			shed++
		}
	}
	t.log.Debug("thermal erosion pass", "cells", shed, "talus", talus, "rate", rate)

	return shed
}

// TectonicErosion applies the stream-power law p.Iterations times to every
// interior cell: h += U + K·area^(N/2)·slope^N + c·laplacian, where c is
// p.Diffusion under WithDiffusion(true) and 0 otherwise. Area, slope and
// Laplacian are computed once up front, or before every iteration under
// WithRefreshDerived(true).
func (t *Terrain) TectonicErosion(p TectonicParams) error {
	if p.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrBadIterations, p.Iterations)
	}
	c := 0.0
	if t.opts.Diffusion {
		c = p.Diffusion
	}
	nx, ny := t.g.Size()
	live := t.g.Raw()

	var area, slope, lap []float64
	for it := 0; it < p.Iterations; it++ {
		if it == 0 || t.opts.RefreshDerived {
			area = t.AreaMap().Raw()
			slope = t.SlopeMap().Raw()
			lap = t.LaplacianMap().Raw()
		}
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				k := t.g.Index(i, j)
				live[k] += p.Uplift +
					p.Erodibility*math.Pow(area[k], p.Exponent/2)*math.Pow(slope[k], p.Exponent) +
					c*lap[k]
			}
		}
	}
	t.log.Debug("tectonic erosion", "iterations", p.Iterations, "diffusion", c, "refresh", t.opts.RefreshDerived)

	return nil
}

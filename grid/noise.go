package grid

// FillNoise replaces every value with src.Sample(i, j).
func (g *Grid) FillNoise(src Sampler) error {
	return g.applyNoise(src, false)
}

// AddNoise adds src.Sample(i, j) to every value.
func (g *Grid) AddNoise(src Sampler) error {
	return g.applyNoise(src, true)
}

func (g *Grid) applyNoise(src Sampler, accumulate bool) error {
	if src == nil {
		return ErrNilSampler
	}
	for i := 0; i < g.nx; i++ {
		for j := 0; j < g.ny; j++ {
			v := src.Sample(float64(i), float64(j))
			idx := g.Index(i, j)
			if accumulate {
				v += g.values[idx]
			}
			g.values[idx] = v
		}
	}

	return nil
}

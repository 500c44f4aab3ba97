package grid

import "github.com/katalvlaran/heightfield/layer"

// Classify assigns a layer to every cell from its offset above MinValue,
// relative to the span MaxValue-MinValue. The result is parallel to the
// values, in index order.
func (g *Grid) Classify(th layer.Thresholds) []layer.Kind {
	lo, hi := g.MinValue(), g.MaxValue()
	span := hi - lo
	out := make([]layer.Kind, len(g.values))
	for k, v := range g.values {
		out[k] = th.Classify(v, lo, span)
	}

	return out
}

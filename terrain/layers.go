package terrain

import (
	"fmt"

	"github.com/katalvlaran/heightfield/layer"
)

// ClassifyLayers reassigns every cell's layer from the current elevation,
// discarding any path markings.
func (t *Terrain) ClassifyLayers() {
	t.layers = t.g.Classify(t.opts.Thresholds)
}

// Layers returns a copy of the per-cell layers in index order.
func (t *Terrain) Layers() []layer.Kind {
	out := make([]layer.Kind, len(t.layers))
	copy(out, t.layers)

	return out
}

// LayerAt returns the layer of cell (i,j).
func (t *Terrain) LayerAt(i, j int) (layer.Kind, error) {
	idx, err := t.Index(i, j)
	if err != nil {
		return 0, err
	}

	return t.layers[idx], nil
}

// LayerRegions returns the 8-connected regions of cells carrying kind,
// e.g. separate lakes or snowfields.
func (t *Terrain) LayerRegions(kind layer.Kind) ([][]int, error) {
	if _, ok := layer.Get(kind); !ok {
		return nil, fmt.Errorf("terrain: %w: %d", layer.ErrUnknownKind, kind)
	}

	return t.conn8.ConnectedComponents(func(idx int) bool { return t.layers[idx] == kind }), nil
}
